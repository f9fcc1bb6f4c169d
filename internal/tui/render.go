package tui

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/studiowebux/notepad/internal/keybinds"
	"github.com/studiowebux/notepad/internal/session"
	"github.com/studiowebux/notepad/internal/types"
)

var (
	// Colors that adapt to terminal background
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSelected = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"})
	styleSuccess  = lipgloss.NewStyle().Foreground(colorGreen)
	styleError    = lipgloss.NewStyle().Foreground(colorRed)
	styleWarning  = lipgloss.NewStyle().Foreground(colorYellow)
	styleSubtle   = lipgloss.NewStyle().Foreground(colorGray)
	styleMatch    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// colorFor resolves a colour name or hex value to a lipgloss colour
func colorFor(value string) lipgloss.Color {
	if hex, err := session.ParseColor(value); err == nil {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(value)
}

// cell classes used while painting the editor
const (
	cellText = iota
	cellHighlight
	cellSelection
	cellCursor
)

// editorStyles returns the style for each cell class under the current presentation
func editorStyles(p session.Presentation) [4]lipgloss.Style {
	text := lipgloss.NewStyle().
		Foreground(colorFor(p.TextArea.Foreground)).
		Background(colorFor(p.TextArea.Background))

	return [4]lipgloss.Style{
		cellText: text,
		cellHighlight: lipgloss.NewStyle().
			Foreground(colorFor(types.LightTheme.Foreground)).
			Background(colorFor(p.Highlight)),
		cellSelection: lipgloss.NewStyle().
			Foreground(colorFor(types.DarkTheme.Foreground)).
			Background(lipgloss.Color("#3a6ea5")),
		cellCursor: text.Reverse(true),
	}
}

// chromeStyle is the window colour used for the menu and status bars
func chromeStyle(p session.Presentation) lipgloss.Style {
	fg := types.LightTheme.Foreground
	if p.Dark {
		fg = types.DarkTheme.Foreground
	}
	return lipgloss.NewStyle().
		Foreground(colorFor(fg)).
		Background(colorFor(p.Window))
}

// runeCell returns what a rune paints and how many columns it takes
func runeCell(r rune) (string, int) {
	switch {
	case r == '\t':
		return strings.Repeat(" ", TabWidth), TabWidth
	case r == '\r':
		return "", 0
	case unicode.IsControl(r):
		return "?", 1
	}
	return string(r), runewidth.RuneWidth(r)
}

// displayWidth is the number of columns s takes in the editor
func displayWidth(s string) int {
	width := 0
	for _, r := range s {
		_, w := runeCell(r)
		width += w
	}
	return width
}

// editorHeight is the number of text rows the editor area has
func (m *Model) editorHeight() int {
	h := m.height - MenuBarLines - StatusBarLines
	switch m.mode {
	case ModeFindReplace:
		h -= FindPanelLines
	case ModePrompt:
		h -= PromptLines
	}
	return max(h, 1)
}

// ensureCursorVisible scrolls the editor so the cursor stays on screen
func (m *Model) ensureCursorVisible() {
	height := m.editorHeight()
	if m.width <= 0 {
		return
	}

	buf := m.session.Buffer()
	line, _ := buf.LineCol()

	margin := min(ScrollMargin, (height-1)/2)
	if line < m.scrollY+margin {
		m.scrollY = line - margin
	}
	if line > m.scrollY+height-1-margin {
		m.scrollY = line - height + 1 + margin
	}
	m.scrollY = max(0, min(m.scrollY, buf.LineCount()-height))

	text := buf.Text()
	cursor := buf.Cursor()
	lineStart := strings.LastIndex(text[:cursor], "\n") + 1
	col := displayWidth(text[lineStart:cursor])
	if col < m.scrollX {
		m.scrollX = col
	}
	if col >= m.scrollX+m.width {
		m.scrollX = col - m.width + 1
	}
}

// updateViewport resizes the modal viewports to the terminal
func (m *Model) updateViewport() {
	m.helpView.Width = max(m.width-ModalWidthMarginNarrow-ViewportPaddingHorizontal, 10)
	m.helpView.Height = max(m.height-ModalHeightMarginMed-ModalOverheadLines, 1)
	m.updateHelpView()
}

// renderMain renders the editor screen
func (m *Model) renderMain() string {
	sections := []string{m.renderMenuBar(), m.renderEditor()}

	switch m.mode {
	case ModeFindReplace:
		sections = append(sections, m.renderFindPanel())
	case ModePrompt:
		sections = append(sections, m.renderPrompt())
	}

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// menuGroups lays out the menu bar
var menuGroups = []struct {
	name    string
	actions []keybinds.Action
}{
	{"File", []keybinds.Action{
		keybinds.ActionNew, keybinds.ActionOpen, keybinds.ActionSave, keybinds.ActionSaveAs,
		keybinds.ActionPrint, keybinds.ActionOpenRecent, keybinds.ActionExit,
	}},
	{"Edit", []keybinds.Action{
		keybinds.ActionFindReplace, keybinds.ActionCopy, keybinds.ActionCut, keybinds.ActionPaste,
	}},
	{"View", []keybinds.Action{
		keybinds.ActionToggleDarkMode, keybinds.ActionFontIncrease, keybinds.ActionFontDecrease,
		keybinds.ActionFontColor,
	}},
	{"Help", []keybinds.Action{keybinds.ActionOpenHelp}},
}

var menuLabels = map[keybinds.Action]string{
	keybinds.ActionNew:            "New",
	keybinds.ActionOpen:           "Open",
	keybinds.ActionSave:           "Save",
	keybinds.ActionSaveAs:         "Save As",
	keybinds.ActionPrint:          "Print",
	keybinds.ActionOpenRecent:     "Recent",
	keybinds.ActionExit:           "Exit",
	keybinds.ActionFindReplace:    "Find",
	keybinds.ActionCopy:           "Copy",
	keybinds.ActionCut:            "Cut",
	keybinds.ActionPaste:          "Paste",
	keybinds.ActionToggleDarkMode: "Dark",
	keybinds.ActionFontIncrease:   "A+",
	keybinds.ActionFontDecrease:   "A-",
	keybinds.ActionFontColor:      "Color",
	keybinds.ActionOpenHelp:       "Help",
}

// shortKey formats a key for the menu bar: ctrl+n -> ^N, alt+s -> M-s
func shortKey(key string) string {
	switch {
	case strings.HasPrefix(key, "ctrl+") && len(key) == len("ctrl+")+1:
		return "^" + strings.ToUpper(key[len("ctrl+"):])
	case strings.HasPrefix(key, "alt+"):
		return "M-" + key[len("alt+"):]
	case len(key) > 1 && key[0] == 'f':
		return strings.ToUpper(key)
	}
	return key
}

// renderMenuBar renders the one-line menu with each command's key
func (m *Model) renderMenuBar() string {
	groups := make([]string, 0, len(menuGroups))
	for _, group := range menuGroups {
		items := make([]string, 0, len(group.actions))
		for _, action := range group.actions {
			keys := m.keybinds.GetBinding(keybinds.ContextEditor, action)
			if len(keys) == 0 {
				continue
			}
			items = append(items, shortKey(keys[0])+" "+menuLabels[action])
		}
		groups = append(groups, group.name+": "+strings.Join(items, "  "))
	}

	bar := runewidth.Truncate(" "+strings.Join(groups, " | "), m.width, "…")
	return chromeStyle(m.session.Presentation()).Bold(true).Width(m.width).Render(bar)
}

// lineView paints one buffer line into the editor area
type lineView struct {
	styles     [4]lipgloss.Style
	width      int
	scrollX    int
	cursor     int // -1 when the cursor is hidden
	selection  types.Span
	selected   bool
	highlights []types.Span
}

func (v *lineView) class(pos int) int {
	if pos == v.cursor {
		return cellCursor
	}
	if v.selected && v.selection.Contains(pos) {
		return cellSelection
	}
	i := sort.Search(len(v.highlights), func(i int) bool { return v.highlights[i].End > pos })
	if i < len(v.highlights) && v.highlights[i].Start <= pos {
		return cellHighlight
	}
	return cellText
}

// render paints line, which starts at buffer offset start
func (v *lineView) render(line string, start int) string {
	var out, run strings.Builder
	runClass := cellText
	used, col := 0, 0

	emit := func(cell string, width, class int) {
		if class != runClass && run.Len() > 0 {
			out.WriteString(v.styles[runClass].Render(run.String()))
			run.Reset()
		}
		runClass = class
		run.WriteString(cell)
		used += width
	}

	for off, r := range line {
		cell, w := runeCell(r)
		if col < v.scrollX {
			col += w
			continue
		}
		if used+w > v.width {
			break
		}
		emit(cell, w, v.class(start+off))
		col += w
	}

	if v.cursor == start+len(line) && col >= v.scrollX && used < v.width {
		emit(" ", 1, cellCursor)
	}
	if run.Len() > 0 {
		out.WriteString(v.styles[runClass].Render(run.String()))
	}
	if used < v.width {
		out.WriteString(v.styles[cellText].Render(strings.Repeat(" ", v.width-used)))
	}
	return out.String()
}

// renderEditor renders the visible part of the buffer
func (m *Model) renderEditor() string {
	buf := m.session.Buffer()
	height := m.editorHeight()

	view := lineView{
		styles:     editorStyles(m.session.Presentation()),
		width:      m.width,
		scrollX:    m.scrollX,
		cursor:     -1,
		highlights: m.session.Highlights(),
	}
	if m.mode == ModeEditor {
		view.cursor = buf.Cursor()
	}
	view.selection, view.selected = buf.Selection()

	rows := make([]string, 0, height)
	offset := 0
	for i, line := range strings.Split(buf.Text(), "\n") {
		if i >= m.scrollY+height {
			break
		}
		if i >= m.scrollY {
			rows = append(rows, view.render(line, offset))
		}
		offset += len(line) + 1
	}

	blank := view.styles[cellText].Render(strings.Repeat(" ", m.width))
	for len(rows) < height {
		rows = append(rows, blank)
	}

	return strings.Join(rows, "\n")
}

// renderFindPanel renders the Find/Replace panel below the editor
func (m *Model) renderFindPanel() string {
	inner := max(m.width-4, 10)

	content := "Find: " + m.findInput.Render(m.findField == 0) +
		"   Replace: " + m.replaceInput.Render(m.findField == 1) +
		"   " + styleSubtle.Render(fmt.Sprintf("%s: find | %s: replace all | %s: switch | %s: close",
		m.keybinds.GetBindingString(keybinds.ContextFindReplace, keybinds.ActionFind),
		m.keybinds.GetBindingString(keybinds.ContextFindReplace, keybinds.ActionReplaceAll),
		shortKey(m.findReplaceKey(keybinds.ActionSwitchField)),
		shortKey(m.findReplaceKey(keybinds.ActionCloseModal))))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Padding(0, 1).
		Width(inner + 2).
		Render(lipgloss.NewStyle().MaxWidth(inner).Render(content))
}

func (m *Model) findReplaceKey(action keybinds.Action) string {
	if keys := m.keybinds.GetBinding(keybinds.ContextFindReplace, action); len(keys) > 0 {
		return keys[0]
	}
	return "unbound"
}

// renderPrompt renders the single-line prompt above the status bar
func (m *Model) renderPrompt() string {
	line := styleTitle.Render(m.promptTitle+": ") + m.prompt.Render(true) +
		styleSubtle.Render("  Enter: ok | Esc: cancel")
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

// renderStatusBar renders the title, cursor position and latest message
func (m *Model) renderStatusBar() string {
	p := m.session.Presentation()
	bar := chromeStyle(p)

	left := " " + m.session.Title()
	if m.session.Dirty() {
		left += " [modified]"
	}

	line, col := m.session.Buffer().LineCol()
	info := fmt.Sprintf("%s %dpt | Ln %d, Col %d ", p.FontFamily, p.FontSize, line+1, col+1)

	var msg string
	switch {
	case m.errorMsg != "":
		msg = styleError.Inherit(bar).Render(m.errorMsg)
	case m.statusMsg != "":
		msg = styleSuccess.Inherit(bar).Render(m.statusMsg)
	default:
		msg = bar.Foreground(colorGray).Render("F1: help")
	}
	right := msg + bar.Render(" | "+info)

	leftWidth := m.width - lipgloss.Width(right) - 1
	if leftWidth < 1 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(right)
	}
	left = runewidth.Truncate(left, leftWidth, "…")
	spacing := strings.Repeat(" ", max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0))

	return bar.Render(left+spacing) + right
}
