package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/notepad/internal/config"
	"github.com/studiowebux/notepad/internal/document"
	"github.com/studiowebux/notepad/internal/export"
	"github.com/studiowebux/notepad/internal/search"
	"github.com/studiowebux/notepad/internal/session"
	"github.com/studiowebux/notepad/internal/types"
)

// ErrNoMatches is returned by Find when the term does not occur
var ErrNoMatches = errors.New("no matches")

// RecentStore lists recently used files
type RecentStore interface {
	Recent(limit int) ([]types.RecentFile, error)
}

// Env carries what every command needs. A nil Recorder disables history.
type Env struct {
	Out      io.Writer
	Err      io.Writer
	Settings config.Settings
	Recorder session.Recorder
	Log      zerolog.Logger
}

// session opens path in a fresh editor session wired to the environment
func (e Env) session(path string, exporter session.Exporter) (*session.Session, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("a file path is required")
	}

	opts := []session.Option{
		session.WithSettings(e.Settings),
		session.WithLogger(e.Log),
	}
	if e.Recorder != nil {
		opts = append(opts, session.WithRecorder(e.Recorder))
	}
	if exporter != nil {
		opts = append(opts, session.WithExporter(exporter))
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	sess := session.New(opts...)
	if err := sess.Open(expanded); err != nil {
		return nil, err
	}
	return sess, nil
}

// exportJobs bounds how many documents Export renders at once
const exportJobs = 4

// ExportOptions contains options for exporting documents to PDF
type ExportOptions struct {
	Files    []string
	Output   string // only with a single file; defaults to the file with a .pdf extension
	PageSize string // defaults to the settings page size
}

// Export writes each file to a single-page PDF. Files are rendered
// concurrently and the first failure cancels the ones not yet started.
func Export(ctx context.Context, env Env, opts ExportOptions) error {
	if len(opts.Files) == 0 {
		return errors.New("a file path is required")
	}
	if opts.Output != "" && len(opts.Files) > 1 {
		return errors.New("--output needs exactly one file")
	}

	pageSize := opts.PageSize
	if pageSize == "" {
		pageSize = env.Settings.PageSize
	}
	exporter, err := export.NewPDFExporter(pageSize)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(exportJobs)

	for _, path := range opts.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dest, err := env.exportOne(exporter, path, opts.Output)
			if err != nil {
				if len(opts.Files) > 1 {
					return fmt.Errorf("%s: %w", path, err)
				}
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(env.Err, "PDF file created successfully: %s\n", dest)
			return nil
		})
	}
	return g.Wait()
}

func (e Env) exportOne(exporter *export.PDFExporter, path, output string) (string, error) {
	sess, err := e.session(path, exporter)
	if err != nil {
		return "", err
	}

	dest := output
	if dest == "" {
		dest = sess.DefaultExportPath()
	} else {
		if dest, err = config.ExpandPath(dest); err != nil {
			return "", err
		}
		dest = document.WithDefaultExtension(dest, ".pdf")
	}

	if err := sess.Export(dest); err != nil {
		return "", err
	}
	return dest, nil
}

// ReplaceOptions contains options for replacing text in a document
type ReplaceOptions struct {
	FilePath string
	Find     string
	Replace  string
	InPlace  bool // save the result back to FilePath instead of printing it
}

// Replace substitutes every occurrence of Find and returns the count.
// Without InPlace the new text goes to env.Out and the file is untouched.
func Replace(env Env, opts ReplaceOptions) (int, error) {
	if opts.Find == "" {
		return 0, errors.New("--find must not be empty")
	}

	sess, err := env.session(opts.FilePath, nil)
	if err != nil {
		return 0, err
	}

	count := sess.Replace(opts.Find, opts.Replace)

	if opts.InPlace {
		if count > 0 {
			if err := sess.Save(); err != nil {
				return 0, err
			}
		}
		fmt.Fprintf(env.Err, "Replaced %d occurrences in %s\n", count, sess.Path())
		return count, nil
	}

	fmt.Fprint(env.Out, sess.Text())
	return count, nil
}

// Match is one find result
type Match struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
	Offset int `json:"offset" yaml:"offset"`
}

// FindOptions contains options for finding a term in a document
type FindOptions struct {
	FilePath string
	Term     string
	Format   string // text, json or yaml
}

// Find prints the position of every match of Term. It returns ErrNoMatches
// when there are none, so scripts can test the exit code.
func Find(env Env, opts FindOptions) error {
	if opts.Term == "" {
		return errors.New("search term must not be empty")
	}

	text, err := document.Read(opts.FilePath)
	if err != nil {
		return err
	}

	matches := []Match{}
	for span := range search.Matches(text, opts.Term) {
		line, col := search.Position(text, span.Start)
		matches = append(matches, Match{Line: line, Column: col, Offset: span.Start})
	}

	output, err := formatOutput(matches, opts.Format, func(sb *strings.Builder) {
		for _, m := range matches {
			fmt.Fprintf(sb, "%d:%d\n", m.Line, m.Column)
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprint(env.Out, output)

	if len(matches) == 0 {
		return ErrNoMatches
	}
	return nil
}

// RecentOptions contains options for listing recent files
type RecentOptions struct {
	Limit  int
	Format string // text, json or yaml
}

// Recent prints the recently used files, most recent first
func Recent(env Env, store RecentStore, opts RecentOptions) error {
	files, err := store.Recent(opts.Limit)
	if err != nil {
		return fmt.Errorf("failed to load recent files: %w", err)
	}
	if files == nil {
		files = []types.RecentFile{}
	}

	output, err := formatOutput(files, opts.Format, func(sb *strings.Builder) {
		for _, f := range files {
			fmt.Fprintf(sb, "%s  %s\n", f.LastUsed.Format("2006-01-02 15:04"), f.Path)
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprint(env.Out, output)
	return nil
}

// HistoryStore reads and clears recorded document events
type HistoryStore interface {
	Load(limit int) ([]types.HistoryEntry, error)
	LoadForFile(path string) ([]types.HistoryEntry, error)
	GetCount() (int, error)
	Clear() error
}

// HistoryOptions contains options for listing document events
type HistoryOptions struct {
	File   string // only events for this file
	Limit  int    // 0 lists everything
	Format string // text, json or yaml
}

// History prints recorded events, newest first
func History(env Env, store HistoryStore, opts HistoryOptions) error {
	var entries []types.HistoryEntry
	var err error
	if opts.File != "" {
		entries, err = store.LoadForFile(opts.File)
		if opts.Limit > 0 && len(entries) > opts.Limit {
			entries = entries[:opts.Limit]
		}
	} else {
		entries, err = store.Load(opts.Limit)
	}
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []types.HistoryEntry{}
	}

	output, err := formatOutput(entries, opts.Format, func(sb *strings.Builder) {
		for _, e := range entries {
			fmt.Fprintf(sb, "%s  %-7s  %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Kind, e.Path)
			if e.Target != "" {
				fmt.Fprintf(sb, " -> %s", e.Target)
			}
			fmt.Fprintf(sb, "  (%d bytes)\n", e.Size)
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprint(env.Out, output)
	return nil
}

// ClearHistory deletes every recorded event and reports how many were removed
func ClearHistory(env Env, store HistoryStore) error {
	count, err := store.GetCount()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	env.Log.Info().Int("events", count).Msg("history cleared")
	fmt.Fprintf(env.Err, "Cleared %d history entries\n", count)
	return nil
}

// formatOutput marshals v as json or yaml, or builds the text form with text
func formatOutput(v any, format string, text func(*strings.Builder)) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "", "text":
		var sb strings.Builder
		text(&sb)
		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown output format: %s (use text, json or yaml)", format)
	}
}

// isInteractive checks if stdin is a terminal (not piped)
func isInteractive() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
