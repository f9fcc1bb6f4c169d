package types

import "time"

// Span is a half-open byte range [Start, End) into a text buffer
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the span length in bytes
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether byte offset pos lies inside the span
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// ColorPair is a background/foreground combination
type ColorPair struct {
	Background string `json:"background" yaml:"background"`
	Foreground string `json:"foreground" yaml:"foreground"`
}

// Light and dark theme colours, applied to both the text area and the window
var (
	LightTheme = ColorPair{Background: "white", Foreground: "black"}
	DarkTheme  = ColorPair{Background: "black", Foreground: "white"}
)

// EventKind identifies a recorded document event
type EventKind string

const (
	EventOpen   EventKind = "open"
	EventSave   EventKind = "save"
	EventSaveAs EventKind = "save_as"
	EventExport EventKind = "export"
)

// HistoryEntry represents a single recorded document event
type HistoryEntry struct {
	ID        int64     `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Kind      EventKind `json:"kind" yaml:"kind"`
	Path      string    `json:"path" yaml:"path"`
	Target    string    `json:"target,omitempty" yaml:"target,omitempty"` // export destination
	Size      int       `json:"size" yaml:"size"`                         // bytes written or read
}

// RecentFile is an entry in the most-recently-used list
type RecentFile struct {
	Path     string    `json:"path" yaml:"path"`
	LastUsed time.Time `json:"lastUsed" yaml:"lastUsed"`
}
