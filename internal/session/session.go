// Package session implements the editor session: one document buffer, its
// associated file path, presentation state, and find/replace state.
//
// All operations are synchronous and the session is not safe for concurrent
// use; it is driven from the single UI event loop.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studiowebux/notepad/internal/clipboard"
	"github.com/studiowebux/notepad/internal/config"
	"github.com/studiowebux/notepad/internal/document"
	"github.com/studiowebux/notepad/internal/search"
	"github.com/studiowebux/notepad/internal/types"
)

const (
	// AppTitle is the title with no document associated
	AppTitle = "Notepad"
	// NewFileTitle is the title after New
	NewFileTitle = AppTitle + " - New File"
)

var (
	// ErrNoPath means the document has never been saved; callers fall back to Save As
	ErrNoPath = errors.New("no file associated with the document")

	// ErrNotSaved is returned by Export when the document has no associated path
	ErrNotSaved = errors.New("save the file before printing")
)

// Exporter renders the document text to a file
type Exporter interface {
	WriteFile(path, text string) error
}

// Recorder stores document events
type Recorder interface {
	Record(kind types.EventKind, path, target string, size int) error
}

// Session is the single live editor instance
type Session struct {
	buf   *Buffer
	path  string
	title string
	dirty bool

	presentation Presentation

	findTerm    string
	replaceTerm string
	highlights  []types.Span

	clipboard clipboard.Clipboard
	exporter  Exporter
	recorder  Recorder
	log       zerolog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithClipboard sets the clipboard used by Copy, Cut and Paste
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(s *Session) { s.clipboard = cb }
}

// WithExporter sets the PDF exporter
func WithExporter(e Exporter) Option {
	return func(s *Session) { s.exporter = e }
}

// WithRecorder sets where document events are recorded
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithLogger sets the session logger
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithSettings applies font and theme defaults
func WithSettings(settings config.Settings) Option {
	return func(s *Session) {
		highlight, err := ParseColor(settings.HighlightColor)
		if err != nil {
			highlight = "#ffff00"
		}
		s.presentation = newPresentation(settings.FontFamily, settings.FontSize, settings.StartDark(), highlight)
	}
}

// New creates an empty session
func New(opts ...Option) *Session {
	defaults := config.DefaultSettings()
	s := &Session{
		buf:          NewBuffer(""),
		title:        AppTitle,
		presentation: newPresentation(defaults.FontFamily, defaults.FontSize, false, "#ffff00"),
		clipboard:    &clipboard.Memory{},
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Text returns the buffer contents
func (s *Session) Text() string {
	return s.buf.Text()
}

// Buffer exposes the editable buffer for cursor movement and selection.
// Edits must go through the session so highlights and the dirty flag stay correct.
func (s *Session) Buffer() *Buffer {
	return s.buf
}

// Path returns the associated file path, or "" when there is none
func (s *Session) Path() string {
	return s.path
}

// Title returns the window title
func (s *Session) Title() string {
	return s.title
}

// Dirty reports whether the buffer changed since the last new, open or save
func (s *Session) Dirty() bool {
	return s.dirty
}

// New clears the buffer and detaches the associated path
func (s *Session) New() {
	s.buf.SetText("")
	s.path = ""
	s.title = NewFileTitle
	s.dirty = false
	s.highlights = nil
	s.log.Debug().Msg("new document")
}

// Open replaces the buffer with the contents of path and associates it.
// An empty path means the user cancelled and is a no-op. On a read error
// the session is left unchanged.
func (s *Session) Open(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	text, err := document.Read(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("open failed")
		return err
	}

	s.buf.SetText(text)
	s.associate(path)
	s.dirty = false
	s.highlights = nil
	s.record(types.EventOpen, path, "", len(text))
	s.log.Info().Str("path", path).Int("bytes", len(text)).Msg("opened document")
	return nil
}

// Attach associates path without reading it, for starting a new file at a
// path that does not exist yet
func (s *Session) Attach(path string) {
	s.buf.SetText("")
	s.associate(path)
	s.dirty = false
	s.highlights = nil
}

// Save overwrites the associated file. It returns ErrNoPath when the
// document has never been saved, and the caller should run Save As.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	if err := s.write(s.path); err != nil {
		return err
	}
	s.record(types.EventSave, s.path, "", len(s.buf.Text()))
	return nil
}

// SaveAs writes the buffer to path and associates it from now on.
// An empty path means the user cancelled and is a no-op.
func (s *Session) SaveAs(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := s.write(path); err != nil {
		return err
	}
	s.associate(path)
	s.record(types.EventSaveAs, path, "", len(s.buf.Text()))
	return nil
}

func (s *Session) write(path string) error {
	if err := document.Write(path, s.buf.Text()); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("save failed")
		return err
	}
	s.dirty = false
	s.log.Info().Str("path", path).Int("bytes", len(s.buf.Text())).Msg("saved document")
	return nil
}

func (s *Session) associate(path string) {
	s.path = path
	s.title = fmt.Sprintf("%s - %s", AppTitle, path)
}

// DefaultExportPath suggests a PDF destination next to the associated file
func (s *Session) DefaultExportPath() string {
	if s.path == "" {
		return ""
	}
	return document.ReplaceExtension(s.path, ".pdf")
}

// Export writes the buffer to a single-page PDF at dest. The document must
// have been saved at least once; otherwise ErrNotSaved is returned and
// nothing is written. An empty dest means the user cancelled.
func (s *Session) Export(dest string) error {
	if s.path == "" {
		return ErrNotSaved
	}
	if strings.TrimSpace(dest) == "" {
		return nil
	}
	if s.exporter == nil {
		return errors.New("no exporter configured")
	}

	if err := s.exporter.WriteFile(dest, s.buf.Text()); err != nil {
		s.log.Error().Err(err).Str("dest", dest).Msg("export failed")
		return fmt.Errorf("failed to export PDF: %w", err)
	}

	s.record(types.EventExport, s.path, dest, len(s.buf.Text()))
	s.log.Info().Str("path", s.path).Str("dest", dest).Msg("exported PDF")
	return nil
}

func (s *Session) record(kind types.EventKind, path, target string, size int) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(kind, path, target, size); err != nil {
		s.log.Warn().Err(err).Str("kind", string(kind)).Str("path", path).Msg("failed to record history")
	}
}

// changed is called after every buffer edit
func (s *Session) changed() {
	s.dirty = true
	s.highlights = nil
}

// InsertText types text at the cursor, replacing any selection
func (s *Session) InsertText(text string) {
	s.buf.Insert(text)
	s.changed()
}

// DeleteBackward deletes the selection or the rune before the cursor
func (s *Session) DeleteBackward() {
	if s.buf.Backspace() {
		s.changed()
	}
}

// DeleteForward deletes the selection or the rune at the cursor
func (s *Session) DeleteForward() {
	if s.buf.Delete() {
		s.changed()
	}
}

// Find highlights every occurrence of term, replacing earlier highlights.
// An empty term clears the highlights.
func (s *Session) Find(term string) []types.Span {
	s.findTerm = term
	s.highlights = nil
	for span := range search.Matches(s.buf.Text(), term) {
		s.highlights = append(s.highlights, span)
	}
	s.log.Debug().Str("term", term).Int("matches", len(s.highlights)).Msg("find")
	return s.highlights
}

// Replace substitutes every occurrence of find with replacement across the
// whole buffer and returns the number of replacements. An empty find is a
// no-op.
func (s *Session) Replace(find, replacement string) int {
	s.findTerm = find
	s.replaceTerm = replacement

	text, count := search.ReplaceAll(s.buf.Text(), find, replacement)
	if count == 0 {
		return 0
	}

	cursor := s.buf.Cursor()
	s.buf.SetText(text)
	s.buf.SetCursor(min(cursor, len(text)))
	s.changed()
	s.log.Debug().Str("find", find).Int("replaced", count).Msg("replace")
	return count
}

// Highlights returns the spans marked by the last Find
func (s *Session) Highlights() []types.Span {
	return s.highlights
}

// FindTerm returns the last search term
func (s *Session) FindTerm() string {
	return s.findTerm
}

// ReplaceTerm returns the last replacement term
func (s *Session) ReplaceTerm() string {
	return s.replaceTerm
}

// ClearHighlights removes all find highlights
func (s *Session) ClearHighlights() {
	s.highlights = nil
}

// Copy puts the selection on the clipboard. With no selection or an
// inaccessible clipboard it silently does nothing.
func (s *Session) Copy() bool {
	text := s.buf.SelectedText()
	if text == "" {
		return false
	}
	if err := s.clipboard.WriteText(text); err != nil {
		s.log.Debug().Err(err).Msg("copy ignored")
		return false
	}
	return true
}

// Cut copies the selection and deletes it. Nothing is deleted if the copy fails.
func (s *Session) Cut() bool {
	if !s.Copy() {
		return false
	}
	s.DeleteBackward()
	return true
}

// Paste inserts the clipboard text at the cursor. An empty or inaccessible
// clipboard is silently ignored.
func (s *Session) Paste() bool {
	text, err := s.clipboard.ReadText()
	if err != nil || text == "" {
		s.log.Debug().Err(err).Msg("paste ignored")
		return false
	}
	s.InsertText(text)
	return true
}
