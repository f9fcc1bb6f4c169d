package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// HomeEnv overrides the configuration directory when set
	HomeEnv = "NOTEPAD_HOME"

	// LocalSettingsFile is looked up in the current directory before the global settings file
	LocalSettingsFile = ".notepad.yaml"
)

var (
	// ConfigDir is the global configuration directory (~/.notepad)
	ConfigDir string

	// SettingsFile is the global YAML settings file
	SettingsFile string

	// DatabasePath is the SQLite database file for document history
	DatabasePath string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string

	// LogFile receives the structured application log
	LogFile string
)

// Initialize sets up the configuration directory and files
// It creates ~/.notepad/ if it doesn't exist
func Initialize() error {
	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	// Set global paths
	ConfigDir = dir
	SettingsFile = filepath.Join(ConfigDir, "settings.yaml")
	DatabasePath = filepath.Join(ConfigDir, "notepad.db")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "notepad.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	// Create default settings file if it doesn't exist
	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		if err := SaveSettings(SettingsFile, DefaultSettings()); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	return nil
}

func resolveConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return ExpandPath(dir)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".notepad"), nil
}

// ExpandPath expands a leading ~/ to the user's home directory
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// GetSettingsFilePath returns the settings file path (local or global)
func GetSettingsFilePath() string {
	if _, err := os.Stat(LocalSettingsFile); err == nil {
		return LocalSettingsFile
	}
	return SettingsFile
}
