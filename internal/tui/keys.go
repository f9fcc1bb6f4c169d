package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/notepad/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeEditor:
		return m.handleEditorKeys(msg)
	case ModeFindReplace:
		return m.handleFindReplaceKeys(msg)
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeConfirmExit:
		return m.handleConfirmExitKeys(msg)
	case ModeRecent:
		return m.handleRecentKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeErrorDetail:
		return m.handleErrorDetailKeys(msg)
	}

	return nil
}

// typedText returns the text a key inserts, if it is a printable key
func typedText(msg tea.KeyMsg) (string, bool) {
	if msg.Alt {
		return "", false
	}
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}

// handleEditorKeys dispatches editor actions; unbound printable keys are typed
func (m *Model) handleEditorKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextEditor, msg.String()); ok {
		if handler, ok := m.actions[action]; ok {
			return handler()
		}
		m.log.Debug().Str("action", string(action)).Msg("unhandled editor action")
		return nil
	}

	if text, ok := typedText(msg); ok {
		return m.insertText(text)
	}
	return nil
}

// handleTextInput applies a text input action to an input field.
// Returns true if the action was a text input action.
func (m *Model) handleTextInput(input *InputState, action keybinds.Action) bool {
	switch action {
	case keybinds.ActionTextBackspace:
		input.Backspace()
	case keybinds.ActionTextDelete:
		input.Delete()
	case keybinds.ActionTextMoveLeft:
		input.MoveLeft()
	case keybinds.ActionTextMoveRight:
		input.MoveRight()
	case keybinds.ActionTextMoveHome:
		input.Home()
	case keybinds.ActionTextMoveEnd:
		input.End()
	case keybinds.ActionTextClearBefore:
		input.ClearBefore()
	case keybinds.ActionTextClearAfter:
		input.ClearAfter()
	case keybinds.ActionTextPaste:
		// Paste fails silently, like the editor's
		if text, err := m.clipboard.ReadText(); err == nil {
			input.Insert(text)
		}
	default:
		return false
	}
	return true
}

// handlePromptKeys handles the single-line path and colour prompts
func (m *Model) handlePromptKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextPrompt, msg.String())
	if ok {
		switch action {
		case keybinds.ActionTextSubmit:
			return m.submitPrompt()
		case keybinds.ActionTextCancel:
			return m.cancelPrompt()
		case keybinds.ActionQuitForce:
			m.Cleanup()
			return tea.Quit
		}
		m.handleTextInput(m.prompt, action)
		return nil
	}

	if text, ok := typedText(msg); ok {
		m.prompt.Insert(text)
	}
	return nil
}

// activeFindField returns the focused Find/Replace field
func (m *Model) activeFindField() *InputState {
	if m.findField == 1 {
		return m.replaceInput
	}
	return m.findInput
}

// handleFindReplaceKeys handles the Find/Replace panel
func (m *Model) handleFindReplaceKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextFindReplace, msg.String())
	if ok {
		switch action {
		case keybinds.ActionFind:
			return m.runFind()
		case keybinds.ActionReplaceAll:
			return m.runReplaceAll()
		case keybinds.ActionSwitchField:
			m.findField = 1 - m.findField
			return nil
		case keybinds.ActionCloseModal, keybinds.ActionTextCancel:
			m.mode = ModeEditor
			return nil
		case keybinds.ActionQuitForce:
			m.Cleanup()
			return tea.Quit
		}
		m.handleTextInput(m.activeFindField(), action)
		return nil
	}

	if text, ok := typedText(msg); ok {
		m.activeFindField().Insert(text)
	}
	return nil
}

// handleConfirmExitKeys handles the exit confirmation
func (m *Model) handleConfirmExitKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextConfirm, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionConfirm, keybinds.ActionQuitForce:
		m.Cleanup()
		return tea.Quit

	case keybinds.ActionCancel:
		m.mode = ModeEditor
	}

	return nil
}

// handleHelpKeys handles keyboard input in the help viewer
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextModal, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal:
		m.mode = ModeEditor
	case keybinds.ActionNavigateDown:
		m.helpView.LineDown(1)
	case keybinds.ActionNavigateUp:
		m.helpView.LineUp(1)
	case keybinds.ActionPageDown:
		m.helpView.PageDown()
	case keybinds.ActionPageUp:
		m.helpView.PageUp()
	case keybinds.ActionQuitForce:
		m.Cleanup()
		return tea.Quit
	}

	return nil
}

// handleErrorDetailKeys handles keyboard input in the error detail modal
func (m *Model) handleErrorDetailKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextModal, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionCloseModal, keybinds.ActionSelect:
		m.mode = m.previousMode
	case keybinds.ActionNavigateDown:
		m.modalView.LineDown(1)
	case keybinds.ActionNavigateUp:
		m.modalView.LineUp(1)
	case keybinds.ActionQuitForce:
		m.Cleanup()
		return tea.Quit
	}

	return nil
}
