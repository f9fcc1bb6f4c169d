// Package search implements literal, case-sensitive find and replace-all
// over a text buffer.
package search

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/studiowebux/notepad/internal/types"
)

// Matches yields every non-overlapping occurrence of term in text, scanning
// from the start. An empty term yields nothing. The sequence is lazy and can
// be ranged over any number of times.
func Matches(text, term string) iter.Seq[types.Span] {
	return func(yield func(types.Span) bool) {
		if term == "" {
			return
		}
		offset := 0
		for {
			idx := strings.Index(text[offset:], term)
			if idx < 0 {
				return
			}
			start := offset + idx
			end := start + len(term)
			if !yield(types.Span{Start: start, End: end}) {
				return
			}
			offset = end
		}
	}
}

// Find collects all matches of term in text
func Find(text, term string) []types.Span {
	var spans []types.Span
	for span := range Matches(text, term) {
		spans = append(spans, span)
	}
	return spans
}

// ReplaceAll replaces every occurrence of find with replacement and returns
// the new text with the number of replacements. An empty find leaves text
// unchanged.
func ReplaceAll(text, find, replacement string) (string, int) {
	if find == "" {
		return text, 0
	}
	count := strings.Count(text, find)
	if count == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, find, replacement), count
}

// Position converts a byte offset into a 1-based line and rune column
func Position(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndex(before, "\n") + 1
	col = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, col
}
