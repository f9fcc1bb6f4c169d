package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/notepad/internal/config"
	"github.com/studiowebux/notepad/internal/keybinds"
)

// helpSection is one block of the help screen
type helpSection struct {
	title   string
	context keybinds.Context
	actions []keybinds.Action
}

var helpSections = []helpSection{
	{"FILE", keybinds.ContextEditor, []keybinds.Action{
		keybinds.ActionNew, keybinds.ActionOpen, keybinds.ActionSave, keybinds.ActionSaveAs,
		keybinds.ActionPrint, keybinds.ActionOpenRecent, keybinds.ActionExit,
	}},
	{"EDIT", keybinds.ContextEditor, []keybinds.Action{
		keybinds.ActionCopy, keybinds.ActionCut, keybinds.ActionPaste, keybinds.ActionSelectAll,
		keybinds.ActionFindReplace, keybinds.ActionClearHighlights,
	}},
	{"VIEW", keybinds.ContextEditor, []keybinds.Action{
		keybinds.ActionToggleDarkMode, keybinds.ActionFontIncrease, keybinds.ActionFontDecrease,
		keybinds.ActionFontColor,
	}},
	{"CURSOR", keybinds.ContextEditor, []keybinds.Action{
		keybinds.ActionMoveUp, keybinds.ActionMoveDown, keybinds.ActionMoveHome, keybinds.ActionMoveEnd,
		keybinds.ActionPageUp, keybinds.ActionPageDown, keybinds.ActionGoToTop, keybinds.ActionGoToBottom,
	}},
	{"SELECTION", keybinds.ContextEditor, []keybinds.Action{
		keybinds.ActionSelectLeft, keybinds.ActionSelectRight, keybinds.ActionSelectUp,
		keybinds.ActionSelectDown, keybinds.ActionSelectHome, keybinds.ActionSelectEnd,
	}},
	{"FIND/REPLACE PANEL", keybinds.ContextFindReplace, []keybinds.Action{
		keybinds.ActionFind, keybinds.ActionReplaceAll, keybinds.ActionSwitchField, keybinds.ActionCloseModal,
	}},
	{"INFORMATION", keybinds.ContextEditor, []keybinds.Action{
		keybinds.ActionOpenHelp, keybinds.ActionOpenError,
	}},
}

// updateHelpView rebuilds the help text from the active key bindings
func (m *Model) updateHelpView() {
	var sb strings.Builder
	sb.WriteString("Unbound printable keys are typed into the document.\n")
	if config.KeybindsFile != "" {
		sb.WriteString("Key bindings can be changed in " + config.KeybindsFile + ".\n")
	}

	for _, section := range helpSections {
		sb.WriteString("\n" + styleTitle.Render(section.title) + "\n")
		for _, action := range section.actions {
			keys := m.keybinds.GetBindingString(section.context, action)
			fmt.Fprintf(&sb, "  %-18s %s\n", keys, keybinds.GetActionInfo(action).Description)
		}
	}

	m.helpView.SetContent(sb.String())
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	title := styleTitle.Render("Keyboard Shortcuts")
	footer := "↑/↓: scroll | PgUp/PgDn: page | ESC/F1: close"

	// Footer is outside the viewport so it stays visible
	fullContent := title + "\n\n" + m.helpView.View() + "\n\n" + styleSubtle.Render(footer)

	helpView := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(m.width - ModalWidthMarginNarrow).
		Height(m.height - ModalHeightMarginMed).
		Padding(1, 2).
		Render(fullContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpView,
	)
}

// renderModalWithFooter renders a modal dialog with scrollable content and a fixed footer
func (m *Model) renderModalWithFooter(title, content, footer string, width, height int) string {
	return m.renderModalWithFooterAndScroll(title, content, footer, width, height, -1)
}

// renderModalWithFooterAndScroll renders a modal with footer and auto-scrolls to keep selectedLine visible.
// Pass selectedLine=-1 to preserve the existing scroll position.
func (m *Model) renderModalWithFooterAndScroll(title, content, footer string, width, height, selectedLine int) string {
	width = min(width, m.width-ViewportPaddingHorizontal)
	height = min(height, m.height-ModalHeightMarginSmall)

	// Minimum reasonable size, unless the terminal itself is tiny
	if width < 30 && m.width >= 30 {
		width = 30
	}
	if height < 8 && m.height >= 8 {
		height = 8
	}

	// Title, padding and border take ModalOverheadLines; a footer adds a blank line and itself
	footerLines := 0
	if footer != "" {
		footerLines = 2
	}
	contentHeight := height - ModalOverheadLines - footerLines
	if contentHeight < 1 {
		contentHeight = max(height-ModalOverheadMinimal-footerLines, 1)
	}

	m.modalView.Width = max(width-ViewportPaddingHorizontal, 10)
	m.modalView.Height = contentHeight

	// SetContent resets the scroll
	savedOffset := m.modalView.YOffset
	m.modalView.SetContent(content)

	offset := savedOffset
	if selectedLine >= 0 && m.modalView.Height > 0 {
		if selectedLine < savedOffset {
			offset = selectedLine
		} else if selectedLine > savedOffset+m.modalView.Height-1 {
			offset = selectedLine - m.modalView.Height + 1
		}
	}
	m.modalView.SetYOffset(offset)

	fullContent := styleTitle.Render(title) + "\n\n" + m.modalView.View()
	if footer != "" {
		fullContent += "\n\n" + styleSubtle.Render(footer)
	}

	modalBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(fullContent)

	// Nearly full screen modals are not centred
	if width >= m.width-2 || height >= m.height-1 {
		return modalBox
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalBox,
	)
}

// renderErrorDetailModal shows the full text of the last error
func (m *Model) renderErrorDetailModal() string {
	width := max(m.width-ModalWidthMargin, 40)
	height := max(m.height-ModalOverheadMinimal, 10)
	contentWidth := max(width-ViewportPaddingHorizontal-2, 10)

	content := styleError.Width(contentWidth).Render(m.fullErrorMsg)
	return m.renderModalWithFooter("Error Details", content, "↑/↓: scroll | ESC: close", width, height)
}

// renderConfirmExitModal asks before leaving the program
func (m *Model) renderConfirmExitModal() string {
	content := "Exit " + m.session.Title() + "?"
	if m.session.Dirty() {
		content += "\n\n" + styleWarning.Render("Unsaved changes will be lost.")
	}

	footer := fmt.Sprintf("%s: exit | %s: cancel",
		m.keybinds.GetBindingString(keybinds.ContextConfirm, keybinds.ActionConfirm),
		m.keybinds.GetBindingString(keybinds.ContextConfirm, keybinds.ActionCancel))
	return m.renderModalWithFooter("Exit", content, footer, 50, 12)
}
