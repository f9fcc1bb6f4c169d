package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/notepad/internal/types"
)

// ErrCancelled is returned when the user leaves a picker without choosing
var ErrCancelled = errors.New("selection cancelled")

var (
	titleStyle   = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	nameStyle    = lipgloss.NewStyle().Bold(true)
	pickedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1).MarginLeft(2)
)

// item is one recent file; missing is set when the file is gone from disk
type item struct {
	path     string
	lastUsed string
	missing  bool
}

func newItem(f types.RecentFile) item {
	_, err := os.Stat(f.Path)
	return item{
		path:     f.Path,
		lastUsed: f.LastUsed.Format("2006-01-02 15:04"),
		missing:  errors.Is(err, os.ErrNotExist),
	}
}

// Filtering matches the whole path so a directory name finds its files
func (i item) FilterValue() string { return i.path }

type selectorModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// Keys belong to the filter while it is being typed
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.choice = ""
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				m.choice = i.path
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectorModel) View() string {
	if m.quitting {
		return ""
	}
	help := helpStyle.Render("↑/↓: navigate • /: filter • enter: open • q/esc: cancel")
	return fmt.Sprintf("%s\n\n%s", m.list.View(), help)
}

// newRecentSelector builds the picker model for files
func newRecentSelector(files []types.RecentFile) selectorModel {
	items := make([]list.Item, 0, len(files))
	for _, f := range files {
		items = append(items, newItem(f))
	}

	const defaultWidth = 80
	const listHeight = 14

	l := list.New(items, itemDelegate{}, defaultWidth, listHeight)
	l.Title = "Open a recent file"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return selectorModel{list: l}
}

// PickRecent shows an interactive list of recent files and returns the
// chosen path. It needs a terminal on stdin.
func PickRecent(store RecentStore, limit int) (string, error) {
	if !isInteractive() {
		return "", errors.New("picking a recent file needs an interactive terminal")
	}

	files, err := store.Recent(limit)
	if err != nil {
		return "", fmt.Errorf("failed to load recent files: %w", err)
	}
	if len(files) == 0 {
		return "", errors.New("no recent files")
	}

	p := tea.NewProgram(newRecentSelector(files))
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(selectorModel)
	if result.choice == "" {
		return "", ErrCancelled
	}
	return result.choice, nil
}

// itemDelegate draws one line per file: marker, base name, directory and
// the last time it was used
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	marker, name := "   ", nameStyle.Render(filepath.Base(i.path))
	if index == m.Index() {
		marker, name = " > ", pickedStyle.Render(filepath.Base(i.path))
	}

	line := fmt.Sprintf("%s%s  %s  %s", marker, name, dimStyle.Render(filepath.Dir(i.path)), dimStyle.Render(i.lastUsed))
	if i.missing {
		line += " " + missingStyle.Render("(missing)")
	}
	fmt.Fprint(w, line)
}
