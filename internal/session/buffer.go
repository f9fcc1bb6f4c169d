package session

import (
	"strings"
	"unicode/utf8"

	"github.com/studiowebux/notepad/internal/types"
)

// Buffer is the editable text with a cursor and an optional selection.
// Offsets are byte offsets and always sit on rune boundaries.
type Buffer struct {
	text   string
	cursor int
	anchor int // selection anchor, -1 when nothing is selected
}

// NewBuffer returns a buffer holding text with the cursor at the start
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text, anchor: -1}
}

// Text returns the full buffer contents
func (b *Buffer) Text() string {
	return b.text
}

// SetText replaces the contents, moving the cursor to the start
func (b *Buffer) SetText(text string) {
	b.text = text
	b.cursor = 0
	b.anchor = -1
}

// Cursor returns the cursor offset
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamping it into the buffer and onto a rune boundary
func (b *Buffer) SetCursor(pos int) {
	b.cursor = b.clamp(pos)
	b.anchor = -1
}

func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.text) {
		return len(b.text)
	}
	for pos > 0 && pos < len(b.text) && !utf8.RuneStart(b.text[pos]) {
		pos--
	}
	return pos
}

// Selection returns the selected span, if any
func (b *Buffer) Selection() (types.Span, bool) {
	if b.anchor < 0 || b.anchor == b.cursor {
		return types.Span{}, false
	}
	if b.anchor < b.cursor {
		return types.Span{Start: b.anchor, End: b.cursor}, true
	}
	return types.Span{Start: b.cursor, End: b.anchor}, true
}

// SelectedText returns the selected text, or "" when nothing is selected
func (b *Buffer) SelectedText() string {
	sel, ok := b.Selection()
	if !ok {
		return ""
	}
	return b.text[sel.Start:sel.End]
}

// SelectAll selects the whole buffer
func (b *Buffer) SelectAll() {
	b.anchor = 0
	b.cursor = len(b.text)
}

// ClearSelection drops the selection, keeping the cursor
func (b *Buffer) ClearSelection() {
	b.anchor = -1
}

// Insert replaces the selection (if any) with s and moves the cursor past it
func (b *Buffer) Insert(s string) {
	b.deleteSelection()
	b.text = b.text[:b.cursor] + s + b.text[b.cursor:]
	b.cursor += len(s)
}

// Backspace deletes the selection, or the rune before the cursor.
// It reports whether anything changed.
func (b *Buffer) Backspace() bool {
	if b.deleteSelection() {
		return true
	}
	if b.cursor == 0 {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(b.text[:b.cursor])
	b.text = b.text[:b.cursor-size] + b.text[b.cursor:]
	b.cursor -= size
	return true
}

// Delete deletes the selection, or the rune at the cursor.
// It reports whether anything changed.
func (b *Buffer) Delete() bool {
	if b.deleteSelection() {
		return true
	}
	if b.cursor >= len(b.text) {
		return false
	}
	_, size := utf8.DecodeRuneInString(b.text[b.cursor:])
	b.text = b.text[:b.cursor] + b.text[b.cursor+size:]
	return true
}

func (b *Buffer) deleteSelection() bool {
	sel, ok := b.Selection()
	b.anchor = -1
	if !ok {
		return false
	}
	b.text = b.text[:sel.Start] + b.text[sel.End:]
	b.cursor = sel.Start
	return true
}

// move places the cursor at pos, extending the selection when extend is set
func (b *Buffer) move(pos int, extend bool) {
	if extend {
		if b.anchor < 0 {
			b.anchor = b.cursor
		}
	} else {
		b.anchor = -1
	}
	b.cursor = b.clamp(pos)
}

// MoveLeft moves one rune left
func (b *Buffer) MoveLeft(extend bool) {
	if !extend {
		if sel, ok := b.Selection(); ok {
			b.move(sel.Start, false)
			return
		}
	}
	if b.cursor == 0 {
		b.move(0, extend)
		return
	}
	_, size := utf8.DecodeLastRuneInString(b.text[:b.cursor])
	b.move(b.cursor-size, extend)
}

// MoveRight moves one rune right
func (b *Buffer) MoveRight(extend bool) {
	if !extend {
		if sel, ok := b.Selection(); ok {
			b.move(sel.End, false)
			return
		}
	}
	if b.cursor >= len(b.text) {
		b.move(len(b.text), extend)
		return
	}
	_, size := utf8.DecodeRuneInString(b.text[b.cursor:])
	b.move(b.cursor+size, extend)
}

// lineStart returns the offset of the start of the line containing pos
func (b *Buffer) lineStart(pos int) int {
	return strings.LastIndex(b.text[:pos], "\n") + 1
}

// lineEnd returns the offset of the newline ending the line containing pos,
// or the buffer length for the last line
func (b *Buffer) lineEnd(pos int) int {
	if idx := strings.Index(b.text[pos:], "\n"); idx >= 0 {
		return pos + idx
	}
	return len(b.text)
}

// offsetAtColumn returns the offset col runes into the line starting at start,
// stopping at the line end
func (b *Buffer) offsetAtColumn(start, col int) int {
	end := b.lineEnd(start)
	pos := start
	for i := 0; i < col && pos < end; i++ {
		_, size := utf8.DecodeRuneInString(b.text[pos:])
		pos += size
	}
	return pos
}

// Home moves to the start of the current line
func (b *Buffer) Home(extend bool) {
	b.move(b.lineStart(b.cursor), extend)
}

// End moves to the end of the current line
func (b *Buffer) End(extend bool) {
	b.move(b.lineEnd(b.cursor), extend)
}

// MoveUp moves to the same rune column on the previous line
func (b *Buffer) MoveUp(extend bool) {
	start := b.lineStart(b.cursor)
	if start == 0 {
		b.move(0, extend)
		return
	}
	col := utf8.RuneCountInString(b.text[start:b.cursor])
	prevStart := b.lineStart(start - 1)
	b.move(b.offsetAtColumn(prevStart, col), extend)
}

// MoveDown moves to the same rune column on the next line
func (b *Buffer) MoveDown(extend bool) {
	end := b.lineEnd(b.cursor)
	if end == len(b.text) {
		b.move(len(b.text), extend)
		return
	}
	col := utf8.RuneCountInString(b.text[b.lineStart(b.cursor):b.cursor])
	b.move(b.offsetAtColumn(end+1, col), extend)
}

// LineCol returns the 0-based line and rune column of the cursor
func (b *Buffer) LineCol() (line, col int) {
	before := b.text[:b.cursor]
	line = strings.Count(before, "\n")
	col = utf8.RuneCountInString(before[b.lineStart(b.cursor):])
	return line, col
}

// LineCount returns the number of lines (an empty buffer has one)
func (b *Buffer) LineCount() int {
	return strings.Count(b.text, "\n") + 1
}
