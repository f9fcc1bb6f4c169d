package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Theme names accepted in the settings file
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Settings holds user defaults applied when a session starts.
// Presentation changes made while editing are not written back.
type Settings struct {
	FontFamily     string `yaml:"font_family"`
	FontSize       int    `yaml:"font_size"`
	Theme          string `yaml:"theme"`
	HighlightColor string `yaml:"highlight_color"`
	PageSize       string `yaml:"page_size"`
	MessageTimeout int    `yaml:"message_timeout"` // seconds, 0 keeps messages until replaced
	LogLevel       string `yaml:"log_level"`
}

// DefaultSettings returns the built-in settings
func DefaultSettings() Settings {
	return Settings{
		FontFamily:     "Arial",
		FontSize:       12,
		Theme:          ThemeLight,
		HighlightColor: "yellow",
		PageSize:       "Letter",
		MessageTimeout: 5,
		LogLevel:       "info",
	}
}

// LoadSettings reads settings from path. A missing file yields the defaults,
// and fields absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings file: %w", err)
	}

	settings.normalize()
	return settings, nil
}

// SaveSettings writes settings to path as YAML
func SaveSettings(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func (s *Settings) normalize() {
	defaults := DefaultSettings()
	if s.FontFamily == "" {
		s.FontFamily = defaults.FontFamily
	}
	if s.FontSize < 2 {
		s.FontSize = defaults.FontSize
	}
	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		s.Theme = defaults.Theme
	}
	if s.HighlightColor == "" {
		s.HighlightColor = defaults.HighlightColor
	}
	if s.PageSize == "" {
		s.PageSize = defaults.PageSize
	}
	if s.MessageTimeout < 0 {
		s.MessageTimeout = 0
	}
	if s.LogLevel == "" {
		s.LogLevel = defaults.LogLevel
	}
}

// StartDark reports whether a session should start in dark mode.
// The auto theme follows the terminal's background colour.
func (s Settings) StartDark() bool {
	switch s.Theme {
	case ThemeDark:
		return true
	case ThemeAuto:
		return termenv.HasDarkBackground()
	default:
		return false
	}
}
