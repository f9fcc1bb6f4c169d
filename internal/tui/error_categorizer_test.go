package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/studiowebux/notepad/internal/session"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantText string
	}{
		{
			name:     "nil error",
			err:      nil,
			wantText: "",
		},
		{
			name:     "print before save",
			err:      session.ErrNotSaved,
			wantText: "Save the file before printing",
		},
		{
			name:     "invalid colour",
			err:      fmt.Errorf("%w: %q", session.ErrInvalidColor, "blurple"),
			wantText: "Invalid color - use a name like red or a hex value like #ff8800",
		},
		{
			name:     "missing file",
			err:      &fs.PathError{Op: "open", Path: "/tmp/gone.txt", Err: syscall.ENOENT},
			wantText: "File not found: /tmp/gone.txt",
		},
		{
			name:     "wrapped permission error",
			err:      fmt.Errorf("failed to read file: %w", &fs.PathError{Op: "open", Path: "/root/x", Err: syscall.EACCES}),
			wantText: "Permission denied: /root/x",
		},
		{
			name:     "directory",
			err:      &fs.PathError{Op: "read", Path: "/tmp", Err: syscall.EISDIR},
			wantText: "Is a directory, not a file: /tmp",
		},
		{
			name:     "disk full",
			err:      &fs.PathError{Op: "write", Path: "/tmp/a.txt", Err: syscall.ENOSPC},
			wantText: "No space left on device",
		},
		{
			name:     "not exist without path",
			err:      fs.ErrNotExist,
			wantText: "File not found",
		},
		{
			name:     "page size",
			err:      errors.New("unsupported page size: Tabloid"),
			wantText: "Unsupported page size - use Letter, Legal, A4 or A5 in settings.yaml",
		},
		{
			name:     "unknown",
			err:      errors.New("something odd"),
			wantText: "Operation failed: something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertModelField(t, "categorizeError", categorizeError(tt.err), tt.wantText)
		})
	}
}

func TestCategorizeError_RealOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := os.ReadFile(path)
	AssertError(t, err)

	AssertModelField(t, "categorizeError", categorizeError(err), "File not found: "+path)
}
