package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/studiowebux/notepad/internal/clipboard"
	"github.com/studiowebux/notepad/internal/config"
	"github.com/studiowebux/notepad/internal/keybinds"
	"github.com/studiowebux/notepad/internal/session"
	"github.com/studiowebux/notepad/internal/types"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeEditor Mode = iota
	ModeFindReplace
	ModePrompt
	ModeConfirmExit
	ModeRecent
	ModeHelp
	ModeErrorDetail
)

// promptKind says what a submitted prompt does
type promptKind int

const (
	promptOpen promptKind = iota
	promptSaveAs
	promptExport
	promptColor
)

// RecentStore lists and forgets recently used files
type RecentStore interface {
	Recent(limit int) ([]types.RecentFile, error)
	Hide(path string) error
}

// Model represents the TUI state
type Model struct {
	// Core state
	session   *session.Session
	keybinds  *keybinds.Registry
	recent    RecentStore
	clipboard clipboard.Clipboard
	settings  config.Settings
	log       zerolog.Logger
	actions   map[keybinds.Action]func() tea.Cmd
	mode      Mode

	// Editor viewport
	width   int
	height  int
	scrollY int // First visible line
	scrollX int // First visible display column

	// Messages
	statusMsg     string
	errorMsg      string // Truncated error for footer
	fullErrorMsg  string // Full error message for detail modal
	fullStatusMsg string
	statusSeq     int // Guards timed clears against newer messages
	errorSeq      int

	// Prompt state
	prompt      *InputState
	promptKind  promptKind
	promptTitle string

	// Find/Replace panel state
	findInput    *InputState
	replaceInput *InputState
	findField    int // 0=find, 1=replace

	// Recent files modal state
	recentFiles   []types.RecentFile
	recentFilter  *InputState
	recentMatches []recentMatch
	recentIndex   int

	// Modal viewports
	helpView  viewport.Model
	modalView viewport.Model

	// Mode to return to when a detail modal closes
	previousMode Mode
	quitting     bool
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.session.Title())
}

// Cleanup releases resources held by the model's collaborators
func (m *Model) Cleanup() {
	m.quitting = true
	if closer, ok := m.recent.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			m.log.Error().Err(err).Msg("error closing history database")
		}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewport()
		m.ensureCursorVisible()

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
			m.fullStatusMsg = ""
		}

	case clearErrorMsg:
		if msg.seq == m.errorSeq {
			m.errorMsg = ""
		}

	case errorMsg:
		cmd = m.setErrorMessage(string(msg))
	}

	if cmd == nil && m.mode == ModeHelp {
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			m.helpView, cmd = m.helpView.Update(msg)
		}
	}

	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	case ModeRecent:
		return m.renderRecentModal()
	case ModeErrorDetail:
		return m.renderErrorDetailModal()
	case ModeConfirmExit:
		return m.renderConfirmExitModal()
	default:
		return m.renderMain()
	}
}

type clearStatusMsg struct{ seq int }
type clearErrorMsg struct{ seq int }

type errorMsg string

// truncateMessage shortens a message for the footer by display width
func truncateMessage(msg string) string {
	return runewidth.Truncate(msg, MaxFooterMessage, "...")
}

func (m *Model) messageTimeout() time.Duration {
	return time.Duration(m.settings.MessageTimeout) * time.Second
}

// setStatusMessage shows msg in the footer, clearing it after the configured timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.fullStatusMsg = msg
	m.statusMsg = truncateMessage(msg)
	m.errorMsg = ""
	m.statusSeq++

	if timeout := m.messageTimeout(); timeout > 0 {
		seq := m.statusSeq
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})
	}
	return nil
}

// setErrorMessage shows msg in the footer in error colour. The full text
// stays available in the error detail modal after the footer clears.
func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.fullErrorMsg = msg
	m.errorMsg = truncateMessage(msg)
	m.errorSeq++
	m.log.Debug().Str("error", msg).Msg("error shown")

	if timeout := m.messageTimeout(); timeout > 0 {
		seq := m.errorSeq
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearErrorMsg{seq: seq}
		})
	}
	return nil
}

// titleCmd pushes the session title to the terminal window
func (m *Model) titleCmd() tea.Cmd {
	return tea.SetWindowTitle(m.session.Title())
}
