package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/studiowebux/notepad/internal/clipboard"
	"github.com/studiowebux/notepad/internal/config"
	"github.com/studiowebux/notepad/internal/export"
	"github.com/studiowebux/notepad/internal/history"
	"github.com/studiowebux/notepad/internal/keybinds"
	"github.com/studiowebux/notepad/internal/logging"
	"github.com/studiowebux/notepad/internal/session"
)

// Options are the collaborators of a Model. Only Session is required.
type Options struct {
	Session   *session.Session
	Keybinds  *keybinds.Registry
	Recent    RecentStore
	Clipboard clipboard.Clipboard
	Settings  config.Settings
	Logger    zerolog.Logger
}

// New creates a new TUI model. The model is returned by pointer because its
// action table holds closures over it.
func New(opts Options) (*Model, error) {
	if opts.Session == nil {
		return nil, errors.New("tui: a session is required")
	}
	if opts.Keybinds == nil {
		opts.Keybinds = keybinds.NewDefaultRegistry()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = &clipboard.Memory{}
	}

	m := &Model{
		session:      opts.Session,
		keybinds:     opts.Keybinds,
		recent:       opts.Recent,
		clipboard:    opts.Clipboard,
		settings:     opts.Settings,
		log:          opts.Logger,
		mode:         ModeEditor,
		prompt:       NewInputState(),
		findInput:    NewInputState(),
		replaceInput: NewInputState(),
		recentFilter: NewInputState(),
		helpView:     viewport.New(80, 20),
		modalView:    viewport.New(80, 20),
	}
	m.actions = m.editorActions()

	return m, nil
}

// Run loads the configuration, opens path (if given) and starts the TUI
func Run(path string) error {
	if err := config.Initialize(); err != nil {
		return err
	}

	settings, settingsErr := config.LoadSettings(config.GetSettingsFilePath())

	log, logCloser, err := logging.Open(config.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	if settingsErr != nil {
		log.Warn().Err(settingsErr).Msg("using default settings")
	}

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		log.Warn().Err(err).Msg("using default keybindings")
		registry = keybinds.NewDefaultRegistry()
	}
	if report := keybinds.Check(registry); len(report) > 0 {
		log.Info().Str("issues", report.String()).Msg("keybinding notes")
	}

	exporter, err := export.NewPDFExporter(settings.PageSize)
	if err != nil {
		log.Warn().Err(err).Str("page_size", settings.PageSize).Msg("falling back to default page size")
		exporter, _ = export.NewPDFExporter(export.DefaultPageSize)
	}

	var cb clipboard.Clipboard = clipboard.NewSystem()
	if clipboard.Unsupported() {
		cb = &clipboard.Memory{}
	}

	sessOpts := []session.Option{
		session.WithSettings(settings),
		session.WithClipboard(cb),
		session.WithExporter(exporter),
		session.WithLogger(log),
	}

	var recent RecentStore
	hist, err := history.NewManager(config.DatabasePath)
	if err != nil {
		log.Warn().Err(err).Msg("history disabled")
	} else {
		recent = hist
		sessOpts = append(sessOpts, session.WithRecorder(hist))
	}

	sess := session.New(sessOpts...)
	if path != "" {
		if err := openInitial(sess, path); err != nil {
			if hist != nil {
				hist.Close()
			}
			return err
		}
	}

	m, err := New(Options{
		Session:   sess,
		Keybinds:  registry,
		Recent:    recent,
		Clipboard: cb,
		Settings:  settings,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	defer m.Cleanup()

	log.Info().Str("path", sess.Path()).Msg("starting editor")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// openInitial loads the file named on the command line. A missing file
// starts an empty document that will be saved to that path.
func openInitial(sess *session.Session, path string) error {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(expanded); errors.Is(err, fs.ErrNotExist) {
		sess.Attach(expanded)
		return nil
	}

	if err := sess.Open(expanded); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
