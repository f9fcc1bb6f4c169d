// Package export writes a document's text to a single-page PDF.
//
// This is a placeholder export, not a print pipeline: the text is drawn as
// one literal string at a fixed position with no wrapping or pagination.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/studiowebux/notepad/internal/config"
)

const (
	// OriginX and OriginY place the text, in points from the bottom-left corner
	OriginX = 100.0
	OriginY = 750.0

	// DefaultPageSize is used when no page size is configured
	DefaultPageSize = "Letter"
)

var pageSizes = map[string]string{
	"letter": "Letter",
	"legal":  "Legal",
	"a4":     "A4",
	"a5":     "A5",
}

// PDFExporter renders text to PDF
type PDFExporter struct {
	PageSize   string
	FontFamily string
	FontSize   float64
	// Compress enables stream compression; tests turn it off to inspect output
	Compress bool
}

// NewPDFExporter returns an exporter for the given page size
func NewPDFExporter(pageSize string) (*PDFExporter, error) {
	size, err := normalizePageSize(pageSize)
	if err != nil {
		return nil, err
	}
	return &PDFExporter{
		PageSize:   size,
		FontFamily: "Helvetica",
		FontSize:   12,
		Compress:   true,
	}, nil
}

func normalizePageSize(pageSize string) (string, error) {
	if strings.TrimSpace(pageSize) == "" {
		return DefaultPageSize, nil
	}
	size, ok := pageSizes[strings.ToLower(strings.TrimSpace(pageSize))]
	if !ok {
		return "", fmt.Errorf("unsupported page size: %s", pageSize)
	}
	return size, nil
}

// Write renders text as a single-page PDF to w
func (e *PDFExporter) Write(w io.Writer, text string) error {
	pdf := fpdf.New("P", "pt", e.PageSize, "")
	pdf.SetCompression(e.Compress)
	pdf.SetCreator("notepad", true)
	pdf.AddPage()
	pdf.SetFont(e.FontFamily, "", e.FontSize)

	// Core fonts are cp1252 encoded
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()
	pdf.Text(OriginX, pageHeight-OriginY, tr(text))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// WriteFile renders text to a PDF file at path
func (e *PDFExporter) WriteFile(path, text string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, config.FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := e.Write(f, text); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
