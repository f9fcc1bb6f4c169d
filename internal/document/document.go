// Package document reads and writes plain-text documents wholesale.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiowebux/notepad/internal/config"
)

// DefaultExtension is appended to paths typed without an extension
const DefaultExtension = ".txt"

// Read returns the full contents of the file at path as one string
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Write replaces the file at path with text
func Write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WithDefaultExtension appends ext when path has no extension.
// Empty paths are returned unchanged.
func WithDefaultExtension(path, ext string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + ext
}

// ReplaceExtension swaps the extension of path for ext
func ReplaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
