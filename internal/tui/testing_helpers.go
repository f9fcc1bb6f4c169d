package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/studiowebux/notepad/internal/clipboard"
	"github.com/studiowebux/notepad/internal/config"
	"github.com/studiowebux/notepad/internal/export"
	"github.com/studiowebux/notepad/internal/history"
	"github.com/studiowebux/notepad/internal/session"
)

// CreateTestModel creates a Model backed by a temporary history database,
// an in-memory clipboard and the real PDF exporter, sized to 80x24
func CreateTestModel(t *testing.T) *Model {
	t.Helper()

	tempDir := t.TempDir()

	hist, err := history.NewManager(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test history: %v", err)
	}

	exporter, err := export.NewPDFExporter(export.DefaultPageSize)
	if err != nil {
		t.Fatalf("Failed to create exporter: %v", err)
	}

	settings := config.DefaultSettings()
	settings.MessageTimeout = 0

	cb := &clipboard.Memory{}
	sess := session.New(
		session.WithSettings(settings),
		session.WithClipboard(cb),
		session.WithExporter(exporter),
		session.WithRecorder(hist),
	)

	m, err := New(Options{
		Session:   sess,
		Recent:    hist,
		Clipboard: cb,
		Settings:  settings,
		Logger:    zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}
	t.Cleanup(m.Cleanup)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

// PressKey sends a key press to the model and returns the resulting command
func PressKey(m *Model, key tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(key)
	return cmd
}

// TypeText sends each rune of text as a separate key press
func TypeText(m *Model, text string) {
	for _, r := range text {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Key builds a key message for a named key such as ctrl+s or enter
func Key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// AltKey builds an alt-modified rune key such as alt+s
func AltKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertNoError verifies that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// AssertError verifies that an error occurred
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected error but got nil")
	}
}
