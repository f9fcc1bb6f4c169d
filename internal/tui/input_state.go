package tui

import "unicode/utf8"

// InputState is a single-line text input with a cursor, used by the path
// and colour prompts, the Find/Replace fields and the recent files filter.
// The cursor is a byte offset kept on a rune boundary.
type InputState struct {
	input  string
	cursor int
}

// NewInputState creates an empty input
func NewInputState() *InputState {
	return &InputState{}
}

// GetInput returns the input value
func (s *InputState) GetInput() string {
	return s.input
}

// SetInput sets the input value, clamping the cursor
func (s *InputState) SetInput(input string) {
	s.input = input
	s.SetCursor(s.cursor)
}

// GetCursor returns the cursor position
func (s *InputState) GetCursor() int {
	return s.cursor
}

// SetCursor sets the cursor position, clamped to the input and moved back
// onto a rune boundary
func (s *InputState) SetCursor(cursor int) {
	cursor = max(0, min(cursor, len(s.input)))
	for cursor > 0 && cursor < len(s.input) && !utf8.RuneStart(s.input[cursor]) {
		cursor--
	}
	s.cursor = cursor
}

// Initialize sets the input and places the cursor at the end
func (s *InputState) Initialize(input string) {
	s.input = input
	s.cursor = len(input)
}

// Reset clears the input
func (s *InputState) Reset() {
	s.input = ""
	s.cursor = 0
}

// Insert types text at the cursor
func (s *InputState) Insert(text string) {
	s.input = s.input[:s.cursor] + text + s.input[s.cursor:]
	s.cursor += len(text)
}

// Backspace deletes the rune before the cursor
func (s *InputState) Backspace() bool {
	if s.cursor == 0 {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.input[:s.cursor])
	s.input = s.input[:s.cursor-size] + s.input[s.cursor:]
	s.cursor -= size
	return true
}

// Delete deletes the rune at the cursor
func (s *InputState) Delete() bool {
	if s.cursor >= len(s.input) {
		return false
	}
	_, size := utf8.DecodeRuneInString(s.input[s.cursor:])
	s.input = s.input[:s.cursor] + s.input[s.cursor+size:]
	return true
}

// MoveLeft moves the cursor one rune left
func (s *InputState) MoveLeft() {
	if s.cursor > 0 {
		_, size := utf8.DecodeLastRuneInString(s.input[:s.cursor])
		s.cursor -= size
	}
}

// MoveRight moves the cursor one rune right
func (s *InputState) MoveRight() {
	if s.cursor < len(s.input) {
		_, size := utf8.DecodeRuneInString(s.input[s.cursor:])
		s.cursor += size
	}
}

// Home moves the cursor to the start
func (s *InputState) Home() {
	s.cursor = 0
}

// End moves the cursor to the end
func (s *InputState) End() {
	s.cursor = len(s.input)
}

// ClearBefore deletes everything before the cursor
func (s *InputState) ClearBefore() {
	s.input = s.input[s.cursor:]
	s.cursor = 0
}

// ClearAfter deletes everything after the cursor
func (s *InputState) ClearAfter() {
	s.input = s.input[:s.cursor]
}

// Render returns the input with a block cursor when active
func (s *InputState) Render(active bool) string {
	if !active {
		return s.input
	}
	return s.input[:s.cursor] + "█" + s.input[s.cursor:]
}
