package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestView_BeforeWindowSize(t *testing.T) {
	m := CreateTestModel(t)
	m.width = 0

	AssertModelField(t, "View", m.View(), "Initializing...")
}

func TestView_MainScreen(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "hello")

	view := m.View()
	for _, want := range []string{"^S Save", "M-s Save As", "hello", "Notepad [modified]", "Ln 1, Col 6", "Arial 12pt"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}

	lines := strings.Split(view, "\n")
	AssertModelField(t, "line count", len(lines), 24)
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 80 {
			t.Errorf("line %d is %d columns wide", i, w)
		}
	}
}

func TestView_FindPanelAndPromptKeepHeight(t *testing.T) {
	m := CreateTestModel(t)

	PressKey(m, Key(tea.KeyCtrlF))
	view := m.View()
	if !strings.Contains(view, "Replace:") {
		t.Error("find panel should be visible")
	}
	AssertModelField(t, "find mode lines", len(strings.Split(view, "\n")), 24)

	PressKey(m, Key(tea.KeyEscape))
	PressKey(m, Key(tea.KeyCtrlO))
	view = m.View()
	if !strings.Contains(view, "Open file:") {
		t.Error("prompt should be visible")
	}
	AssertModelField(t, "prompt mode lines", len(strings.Split(view, "\n")), 24)
}

func TestRenderEditor_ExpandsTabs(t *testing.T) {
	m := CreateTestModel(t)
	TypeText(m, "a")
	PressKey(m, Key(tea.KeyTab))
	TypeText(m, "b")

	rows := strings.Split(m.renderEditor(), "\n")
	AssertModelField(t, "rows", len(rows), m.editorHeight())
	if !strings.HasPrefix(rows[0], "a    b") {
		t.Errorf("tab should expand to %d spaces, got %q", TabWidth, rows[0])
	}
	AssertModelField(t, "row width", lipgloss.Width(rows[0]), 80)
}

func TestEnsureCursorVisible_VerticalScroll(t *testing.T) {
	m := CreateTestModel(t)

	for range 40 {
		PressKey(m, Key(tea.KeyEnter))
	}

	line, _ := m.session.Buffer().LineCol()
	height := m.editorHeight()
	if line < m.scrollY || line >= m.scrollY+height {
		t.Errorf("cursor line %d outside visible rows %d-%d", line, m.scrollY, m.scrollY+height-1)
	}

	PressKey(m, Key(tea.KeyCtrlHome))
	AssertModelField(t, "scrollY", m.scrollY, 0)
}

func TestEnsureCursorVisible_HorizontalScroll(t *testing.T) {
	m := CreateTestModel(t)

	TypeText(m, strings.Repeat("x", 100))
	AssertModelField(t, "scrollX", m.scrollX, 21)

	PressKey(m, Key(tea.KeyHome))
	AssertModelField(t, "scrollX", m.scrollX, 0)
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"abc", 3},
		{"\t", TabWidth},
		{"a\r", 1},
		{"日本", 4},
		{"\x01", 1},
	}

	for _, tt := range tests {
		AssertModelField(t, "displayWidth("+tt.in+")", displayWidth(tt.in), tt.want)
	}
}

func TestShortKey(t *testing.T) {
	tests := map[string]string{
		"ctrl+s":    "^S",
		"alt+s":     "M-s",
		"alt++":     "M-+",
		"f1":        "F1",
		"ctrl+home": "ctrl+home",
		"esc":       "esc",
	}

	for in, want := range tests {
		AssertModelField(t, "shortKey("+in+")", shortKey(in), want)
	}
}

func TestLineView_Classes(t *testing.T) {
	v := lineView{
		cursor:     5,
		selected:   true,
		highlights: nil,
	}
	v.selection.Start, v.selection.End = 1, 3

	AssertModelField(t, "cursor", v.class(5), cellCursor)
	AssertModelField(t, "selection", v.class(2), cellSelection)
	AssertModelField(t, "plain", v.class(4), cellText)

	v.selected = false
	v.highlights = append(v.highlights, v.selection)
	AssertModelField(t, "highlight", v.class(1), cellHighlight)
	AssertModelField(t, "past highlight", v.class(3), cellText)
}
