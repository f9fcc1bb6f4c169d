// Package clipboard adapts the platform clipboard for the editor.
//
// Clipboard failures are expected (no clipboard utility installed, empty
// clipboard) and callers treat them as no-ops.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrEmpty is returned when the clipboard holds no text
var ErrEmpty = errors.New("clipboard is empty")

// Clipboard reads and writes plain text
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System is the platform clipboard
type System struct{}

// Unsupported reports whether the platform clipboard is unavailable,
// for example when no clipboard utility is installed
func Unsupported() bool {
	return clipboard.Unsupported
}

// NewSystem returns the platform clipboard
func NewSystem() System {
	return System{}
}

// ReadText returns the clipboard text, or ErrEmpty if there is none
func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", errors.New("clipboard unsupported on this platform")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// WriteText replaces the clipboard contents
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unsupported on this platform")
	}
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard, used when no platform clipboard is
// available and in tests
type Memory struct {
	text string
	// Fail makes every operation return an error
	Fail bool
}

// ReadText returns the stored text, or ErrEmpty
func (m *Memory) ReadText() (string, error) {
	if m.Fail {
		return "", errors.New("clipboard inaccessible")
	}
	if m.text == "" {
		return "", ErrEmpty
	}
	return m.text, nil
}

// WriteText stores text
func (m *Memory) WriteText(text string) error {
	if m.Fail {
		return errors.New("clipboard inaccessible")
	}
	m.text = text
	return nil
}
