package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/studiowebux/notepad/internal/keybinds"
)

// recentMatch is one visible row of the recent files modal
type recentMatch struct {
	index   int   // Index into recentFiles
	matched []int // Matched character positions in the path
}

// openRecentFiles loads the recent files list and opens the modal
func (m *Model) openRecentFiles() tea.Cmd {
	if m.recent == nil {
		return m.setErrorMessage("History is unavailable")
	}

	files, err := m.recent.Recent(RecentFilesLimit)
	if err != nil {
		return m.setErrorMessage(fmt.Sprintf("Failed to load recent files: %v", err))
	}

	m.recentFiles = files
	m.recentFilter.Reset()
	m.recentIndex = 0
	m.filterRecentFiles()
	m.modalView.GotoTop()
	m.mode = ModeRecent
	return nil
}

// filterRecentFiles applies the fuzzy filter, best matches first.
// An empty filter keeps most-recent-first order.
func (m *Model) filterRecentFiles() {
	query := m.recentFilter.GetInput()
	m.recentMatches = m.recentMatches[:0]

	if query == "" {
		for i := range m.recentFiles {
			m.recentMatches = append(m.recentMatches, recentMatch{index: i})
		}
	} else {
		paths := make([]string, len(m.recentFiles))
		for i, f := range m.recentFiles {
			paths[i] = f.Path
		}
		for _, match := range fuzzy.Find(query, paths) {
			m.recentMatches = append(m.recentMatches, recentMatch{index: match.Index, matched: match.MatchedIndexes})
		}
	}

	if m.recentIndex >= len(m.recentMatches) {
		m.recentIndex = max(0, len(m.recentMatches)-1)
	}
}

// selectedRecentPath returns the path under the cursor, if any
func (m *Model) selectedRecentPath() (string, bool) {
	if len(m.recentMatches) == 0 {
		return "", false
	}
	return m.recentFiles[m.recentMatches[m.recentIndex].index].Path, true
}

// handleRecentKeys handles keyboard input in the recent files modal.
// Unbound printable keys edit the filter.
func (m *Model) handleRecentKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextModal, msg.String())
	if ok {
		switch action {
		case keybinds.ActionCloseModal:
			m.mode = ModeEditor

		case keybinds.ActionNavigateDown:
			if len(m.recentMatches) > 0 {
				m.recentIndex = (m.recentIndex + 1) % len(m.recentMatches)
			}

		case keybinds.ActionNavigateUp:
			if len(m.recentMatches) > 0 {
				m.recentIndex = (m.recentIndex - 1 + len(m.recentMatches)) % len(m.recentMatches)
			}

		case keybinds.ActionSelect:
			path, ok := m.selectedRecentPath()
			if !ok {
				return nil
			}
			m.mode = ModeEditor
			if err := m.session.Open(path); err != nil {
				return m.setErrorMessage(categorizeError(err))
			}
			m.scrollY, m.scrollX = 0, 0
			return tea.Batch(m.titleCmd(), m.setStatusMessage(fmt.Sprintf("Opened %s", filepath.Base(path))))

		case keybinds.ActionForget:
			path, ok := m.selectedRecentPath()
			if !ok {
				return nil
			}
			if err := m.recent.Hide(path); err != nil {
				return m.setErrorMessage(fmt.Sprintf("Failed to remove %s: %v", path, err))
			}
			idx := m.recentMatches[m.recentIndex].index
			m.recentFiles = append(m.recentFiles[:idx], m.recentFiles[idx+1:]...)
			m.filterRecentFiles()
			return m.setStatusMessage(fmt.Sprintf("Removed %s from recent files", filepath.Base(path)))

		case keybinds.ActionQuitForce:
			m.Cleanup()
			return tea.Quit
		}
		return nil
	}

	switch msg.Type {
	case tea.KeyBackspace:
		m.recentFilter.Backspace()
	default:
		text, ok := typedText(msg)
		if !ok {
			return nil
		}
		m.recentFilter.Insert(text)
	}
	m.recentIndex = 0
	m.filterRecentFiles()
	return nil
}

// renderRecentModal renders the recent files modal
func (m *Model) renderRecentModal() string {
	width := min(m.width-ModalWidthMargin, 100)
	height := min(m.height-ModalHeightMarginSmall, RecentFilesLimit+ModalOverheadLines+6)

	var content strings.Builder
	content.WriteString("Filter: " + m.recentFilter.Render(true) + "\n\n")

	if len(m.recentFiles) == 0 {
		content.WriteString(styleSubtle.Render("No recent files"))
		return m.renderModalWithFooter("Recent Files", content.String(), "ESC: close", width, height)
	}
	if len(m.recentMatches) == 0 {
		content.WriteString(styleSubtle.Render("No matches"))
	}

	for row, match := range m.recentMatches {
		file := m.recentFiles[match.index]
		line := fmt.Sprintf("%2d. %s  %s", row+1, highlightMatched(file.Path, match.matched),
			styleSubtle.Render(file.LastUsed.Format("2006-01-02 15:04")))
		if row == m.recentIndex {
			line = styleSelected.Render("> " + line)
		} else {
			line = "  " + line
		}
		content.WriteString(line + "\n")
	}

	footer := "type to filter | ↑/↓: navigate | Enter: open | Ctrl+D: forget | ESC: close"
	// Two header lines (filter + blank) precede the list
	return m.renderModalWithFooterAndScroll("Recent Files", content.String(), footer, width, height, m.recentIndex+2)
}

// highlightMatched renders the fuzzy-matched characters of path in bold
func highlightMatched(path string, matched []int) string {
	if len(matched) == 0 {
		return path
	}

	hits := make(map[int]bool, len(matched))
	for _, i := range matched {
		hits[i] = true
	}

	var sb strings.Builder
	for i, r := range path {
		if hits[i] {
			sb.WriteString(styleMatch.Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
