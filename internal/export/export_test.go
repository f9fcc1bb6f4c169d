package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPDFExporter_PageSizes(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "Letter", false},
		{"letter", "Letter", false},
		{" A4 ", "A4", false},
		{"LEGAL", "Legal", false},
		{"tabloid-ish", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := NewPDFExporter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.PageSize)
		})
	}
}

func TestWrite_ProducesSinglePagePDF(t *testing.T) {
	e, err := NewPDFExporter("Letter")
	require.NoError(t, err)
	e.Compress = false

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, "hello world"))

	out := buf.String()
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, out, "(hello world) Tj")
	assert.Contains(t, out, "/Count 1")
	// PDF user space is bottom-left based, so the original coordinates survive
	assert.Contains(t, out, "100.00 750.00 Td")
}

func TestWrite_EscapesParentheses(t *testing.T) {
	e, err := NewPDFExporter("")
	require.NoError(t, err)
	e.Compress = false

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, "f(x)"))
	assert.Contains(t, buf.String(), `(f\(x\)) Tj`)
}

func TestWriteFile(t *testing.T) {
	e, err := NewPDFExporter("A4")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, e.WriteFile(path, "line one\nline two"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestWriteFile_BadDirectory(t *testing.T) {
	e, err := NewPDFExporter("")
	require.NoError(t, err)

	err = e.WriteFile(filepath.Join(t.TempDir(), "missing", "out.pdf"), "x")
	assert.Error(t, err)
}
