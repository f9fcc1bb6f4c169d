package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/notepad/internal/config"
	"github.com/studiowebux/notepad/internal/document"
	"github.com/studiowebux/notepad/internal/keybinds"
	"github.com/studiowebux/notepad/internal/session"
)

// editorActions maps every editor action to its handler
func (m *Model) editorActions() map[keybinds.Action]func() tea.Cmd {
	buf := m.session.Buffer()
	move := func(fn func(extend bool), extend bool) func() tea.Cmd {
		return func() tea.Cmd {
			fn(extend)
			m.ensureCursorVisible()
			return nil
		}
	}

	return map[keybinds.Action]func() tea.Cmd{
		// File menu
		keybinds.ActionNew:    m.newDocument,
		keybinds.ActionOpen:   m.openFile,
		keybinds.ActionSave:   m.saveFile,
		keybinds.ActionSaveAs: m.saveFileAs,
		keybinds.ActionPrint:  m.printFile,
		keybinds.ActionExit:   m.exit,

		// View and edit menus
		keybinds.ActionToggleDarkMode: m.toggleDarkMode,
		keybinds.ActionFindReplace:    m.openFindReplace,
		keybinds.ActionOpenRecent:     m.openRecentFiles,
		keybinds.ActionOpenHelp:       m.openHelp,
		keybinds.ActionOpenError:      m.openErrorDetail,

		// Toolbar
		keybinds.ActionCopy:         m.copySelection,
		keybinds.ActionCut:          m.cutSelection,
		keybinds.ActionPaste:        m.paste,
		keybinds.ActionSelectAll:    m.selectAll,
		keybinds.ActionFontIncrease: m.increaseFont,
		keybinds.ActionFontDecrease: m.decreaseFont,
		keybinds.ActionFontColor:    m.changeFontColor,

		// Cursor
		keybinds.ActionMoveUp:      move(buf.MoveUp, false),
		keybinds.ActionMoveDown:    move(buf.MoveDown, false),
		keybinds.ActionMoveLeft:    move(buf.MoveLeft, false),
		keybinds.ActionMoveRight:   move(buf.MoveRight, false),
		keybinds.ActionMoveHome:    move(buf.Home, false),
		keybinds.ActionMoveEnd:     move(buf.End, false),
		keybinds.ActionSelectUp:    move(buf.MoveUp, true),
		keybinds.ActionSelectDown:  move(buf.MoveDown, true),
		keybinds.ActionSelectLeft:  move(buf.MoveLeft, true),
		keybinds.ActionSelectRight: move(buf.MoveRight, true),
		keybinds.ActionSelectHome:  move(buf.Home, true),
		keybinds.ActionSelectEnd:   move(buf.End, true),
		keybinds.ActionPageUp:      m.pageUp,
		keybinds.ActionPageDown:    m.pageDown,
		keybinds.ActionGoToTop: func() tea.Cmd {
			buf.SetCursor(0)
			m.ensureCursorVisible()
			return nil
		},
		keybinds.ActionGoToBottom: func() tea.Cmd {
			buf.SetCursor(len(buf.Text()))
			m.ensureCursorVisible()
			return nil
		},
		keybinds.ActionClearHighlights: func() tea.Cmd {
			m.session.ClearHighlights()
			buf.ClearSelection()
			return nil
		},

		// Editing
		keybinds.ActionBackspace: func() tea.Cmd {
			m.session.DeleteBackward()
			m.ensureCursorVisible()
			return nil
		},
		keybinds.ActionDelete: func() tea.Cmd {
			m.session.DeleteForward()
			return nil
		},
		keybinds.ActionNewline: func() tea.Cmd { return m.insertText("\n") },
		keybinds.ActionTab:     func() tea.Cmd { return m.insertText("\t") },

		keybinds.ActionQuitForce: func() tea.Cmd {
			m.Cleanup()
			return tea.Quit
		},
		keybinds.ActionNoOp: func() tea.Cmd { return nil },
	}
}

func (m *Model) insertText(text string) tea.Cmd {
	m.session.InsertText(text)
	m.ensureCursorVisible()
	return nil
}

// newDocument clears the buffer and detaches the file. It does not ask
// about unsaved changes.
func (m *Model) newDocument() tea.Cmd {
	m.session.New()
	m.scrollY, m.scrollX = 0, 0
	return tea.Batch(m.titleCmd(), m.setStatusMessage("New file"))
}

func (m *Model) openFile() tea.Cmd {
	return m.startPrompt(promptOpen, "Open file", m.promptDirectory())
}

// saveFile saves to the associated path, falling back to Save As for a
// document that has never been saved
func (m *Model) saveFile() tea.Cmd {
	err := m.session.Save()
	if errors.Is(err, session.ErrNoPath) {
		return m.saveFileAs()
	}
	if err != nil {
		return m.setErrorMessage(categorizeError(err))
	}
	return m.setStatusMessage(fmt.Sprintf("Saved %s", filepath.Base(m.session.Path())))
}

func (m *Model) saveFileAs() tea.Cmd {
	initial := m.session.Path()
	if initial == "" {
		initial = m.promptDirectory()
	}
	return m.startPrompt(promptSaveAs, "Save as", initial)
}

// printFile asks for the PDF destination. The document must have been saved.
func (m *Model) printFile() tea.Cmd {
	if m.session.Path() == "" {
		return m.setErrorMessage(categorizeError(session.ErrNotSaved))
	}
	return m.startPrompt(promptExport, "Export PDF to", m.session.DefaultExportPath())
}

func (m *Model) exit() tea.Cmd {
	m.mode = ModeConfirmExit
	return nil
}

func (m *Model) toggleDarkMode() tea.Cmd {
	if m.session.ToggleDarkMode() {
		return m.setStatusMessage("Dark mode on")
	}
	return m.setStatusMessage("Dark mode off")
}

func (m *Model) openFindReplace() tea.Cmd {
	m.findInput.Initialize(m.session.FindTerm())
	m.replaceInput.Initialize(m.session.ReplaceTerm())
	m.findField = 0
	m.mode = ModeFindReplace
	m.ensureCursorVisible()
	return nil
}

func (m *Model) openHelp() tea.Cmd {
	m.updateHelpView()
	m.helpView.GotoTop()
	m.mode = ModeHelp
	return nil
}

func (m *Model) openErrorDetail() tea.Cmd {
	if m.fullErrorMsg == "" {
		return m.setStatusMessage("No errors")
	}
	m.previousMode = m.mode
	m.modalView.GotoTop()
	m.mode = ModeErrorDetail
	return nil
}

// Clipboard operations fail silently
func (m *Model) copySelection() tea.Cmd {
	if m.session.Copy() {
		return m.setStatusMessage("Copied to clipboard")
	}
	return nil
}

func (m *Model) cutSelection() tea.Cmd {
	if m.session.Cut() {
		m.ensureCursorVisible()
		return m.setStatusMessage("Cut to clipboard")
	}
	return nil
}

func (m *Model) paste() tea.Cmd {
	if m.session.Paste() {
		m.ensureCursorVisible()
	}
	return nil
}

func (m *Model) selectAll() tea.Cmd {
	m.session.Buffer().SelectAll()
	m.ensureCursorVisible()
	return nil
}

func (m *Model) increaseFont() tea.Cmd {
	size := m.session.IncreaseFontSize()
	return m.setStatusMessage(fmt.Sprintf("Font size %d", size))
}

func (m *Model) decreaseFont() tea.Cmd {
	size := m.session.DecreaseFontSize()
	return m.setStatusMessage(fmt.Sprintf("Font size %d", size))
}

func (m *Model) changeFontColor() tea.Cmd {
	return m.startPrompt(promptColor, "Font color (name or #rrggbb)", m.session.Presentation().TextArea.Foreground)
}

func (m *Model) pageUp() tea.Cmd {
	for range m.editorHeight() {
		m.session.Buffer().MoveUp(false)
	}
	m.ensureCursorVisible()
	return nil
}

func (m *Model) pageDown() tea.Cmd {
	for range m.editorHeight() {
		m.session.Buffer().MoveDown(false)
	}
	m.ensureCursorVisible()
	return nil
}

// promptDirectory suggests the directory of the current file for path prompts
func (m *Model) promptDirectory() string {
	if m.session.Path() == "" {
		return ""
	}
	return filepath.Dir(m.session.Path()) + string(filepath.Separator)
}

func (m *Model) startPrompt(kind promptKind, title, initial string) tea.Cmd {
	m.promptKind = kind
	m.promptTitle = title
	m.prompt.Initialize(initial)
	m.mode = ModePrompt
	return nil
}

// submitPrompt runs the command the prompt was opened for. An empty value
// is a cancel, matching a dismissed file dialog.
func (m *Model) submitPrompt() tea.Cmd {
	m.mode = ModeEditor
	value := strings.TrimSpace(m.prompt.GetInput())
	m.prompt.Reset()
	if value == "" {
		return nil
	}

	switch m.promptKind {
	case promptOpen:
		path, err := config.ExpandPath(value)
		if err != nil {
			return m.setErrorMessage(categorizeError(err))
		}
		if err := m.session.Open(path); err != nil {
			return m.setErrorMessage(categorizeError(err))
		}
		m.scrollY, m.scrollX = 0, 0
		return tea.Batch(m.titleCmd(), m.setStatusMessage(fmt.Sprintf("Opened %s", filepath.Base(path))))

	case promptSaveAs:
		path, err := config.ExpandPath(value)
		if err != nil {
			return m.setErrorMessage(categorizeError(err))
		}
		path = document.WithDefaultExtension(path, document.DefaultExtension)
		if err := m.session.SaveAs(path); err != nil {
			return m.setErrorMessage(categorizeError(err))
		}
		return tea.Batch(m.titleCmd(), m.setStatusMessage(fmt.Sprintf("Saved %s", filepath.Base(path))))

	case promptExport:
		dest, err := config.ExpandPath(value)
		if err != nil {
			return m.setErrorMessage(categorizeError(err))
		}
		dest = document.WithDefaultExtension(dest, ".pdf")
		if err := m.session.Export(dest); err != nil {
			return m.setErrorMessage(categorizeError(err))
		}
		return m.setStatusMessage("PDF file created successfully")

	case promptColor:
		if err := m.session.SetFontColor(value); err != nil {
			return m.setErrorMessage(categorizeError(err))
		}
		return m.setStatusMessage(fmt.Sprintf("Font color %s", m.session.Presentation().TextArea.Foreground))
	}

	return nil
}

func (m *Model) cancelPrompt() tea.Cmd {
	m.mode = ModeEditor
	m.prompt.Reset()
	return nil
}

// runFind highlights every match of the Find field
func (m *Model) runFind() tea.Cmd {
	term := m.findInput.GetInput()
	matches := m.session.Find(term)
	if term == "" {
		return nil
	}
	if len(matches) == 0 {
		return m.setStatusMessage(fmt.Sprintf("No matches for %q", term))
	}
	m.session.Buffer().SetCursor(matches[0].Start)
	m.ensureCursorVisible()
	return m.setStatusMessage(fmt.Sprintf("%d matches", len(matches)))
}

// runReplaceAll replaces every match of the Find field with the Replace field
func (m *Model) runReplaceAll() tea.Cmd {
	find := m.findInput.GetInput()
	if find == "" {
		return nil
	}
	count := m.session.Replace(find, m.replaceInput.GetInput())
	m.ensureCursorVisible()
	return m.setStatusMessage(fmt.Sprintf("Replaced %d occurrences", count))
}
