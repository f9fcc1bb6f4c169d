package tui

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"

	"github.com/studiowebux/notepad/internal/session"
)

// categorizeError turns file, export and colour errors into actionable,
// user-friendly messages. Unknown errors keep their text with a generic prefix.
func categorizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, session.ErrNotSaved):
		return "Save the file before printing"
	case errors.Is(err, session.ErrInvalidColor):
		return "Invalid color - use a name like red or a hex value like #ff8800"
	}

	path := ""
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		path = pathErr.Path
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return withPath("File not found", path)
	case errors.Is(err, fs.ErrPermission):
		return withPath("Permission denied", path)
	case errors.Is(err, syscall.EISDIR):
		return withPath("Is a directory, not a file", path)
	case errors.Is(err, syscall.ENOTDIR):
		return withPath("A parent of the path is not a directory", path)
	case errors.Is(err, syscall.ENOSPC):
		return "No space left on device"
	case errors.Is(err, syscall.EROFS):
		return withPath("Read-only file system", path)
	}

	return categorizeErrorText(err.Error())
}

// categorizeErrorText is the string-based fallback
func categorizeErrorText(errStr string) string {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "unsupported page size") {
		return "Unsupported page size - use Letter, Legal, A4 or A5 in settings.yaml"
	}

	return "Operation failed: " + errStr
}

func withPath(msg, path string) string {
	if path == "" {
		return msg
	}
	return msg + ": " + path
}
