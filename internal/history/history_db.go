package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/studiowebux/notepad/internal/migrations"
	"github.com/studiowebux/notepad/internal/types"
)

// MaxRecentFiles caps the recent-files list
const MaxRecentFiles = 10

// Manager records document events in SQLite
type Manager struct {
	db  *sql.DB
	now func() time.Time
}

func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite allows one writer; concurrent CLI exports share this handle
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	// Run database migrations
	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Manager{db: db, now: time.Now}, nil
}

// Record stores an event for path. Paths are stored absolute so the same
// file opened from different directories is one recent entry.
func (m *Manager) Record(kind types.EventKind, path, target string, size int) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if target != "" {
		if absTarget, err := filepath.Abs(target); err == nil {
			target = absTarget
		}
	}

	_, err = m.db.Exec(
		`INSERT INTO document_events (timestamp, kind, path, target, size) VALUES (?, ?, ?, ?, ?)`,
		m.now().UnixNano(),
		string(kind),
		absPath,
		target,
		size,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	// Using a file again brings it back into the recent list
	if _, err := m.db.Exec(`DELETE FROM hidden_paths WHERE path = ?`, absPath); err != nil {
		return fmt.Errorf("failed to unhide path: %w", err)
	}

	return nil
}

// Recent returns the most recently opened or saved files, newest first.
// Exports do not count as using a file.
func (m *Manager) Recent(limit int) ([]types.RecentFile, error) {
	if limit <= 0 || limit > MaxRecentFiles {
		limit = MaxRecentFiles
	}

	query := `
		SELECT path, MAX(timestamp) AS last_used, MAX(id) AS last_id
		FROM document_events
		WHERE kind IN (?, ?, ?)
		  AND path NOT IN (SELECT path FROM hidden_paths)
		GROUP BY path
		ORDER BY last_id DESC
		LIMIT ?
	`

	rows, err := m.db.Query(query, string(types.EventOpen), string(types.EventSave), string(types.EventSaveAs), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent files: %w", err)
	}
	defer rows.Close()

	var recent []types.RecentFile
	for rows.Next() {
		var path string
		var lastUsed, lastID int64
		if err := rows.Scan(&path, &lastUsed, &lastID); err != nil {
			return nil, fmt.Errorf("failed to scan recent file: %w", err)
		}
		recent = append(recent, types.RecentFile{
			Path:     path,
			LastUsed: time.Unix(0, lastUsed),
		})
	}

	return recent, rows.Err()
}

// Load returns the latest events, newest first. A limit of 0 loads all.
func (m *Manager) Load(limit int) ([]types.HistoryEntry, error) {
	query := `
		SELECT id, timestamp, kind, path, COALESCE(target, ''), size
		FROM document_events
		ORDER BY id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := m.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	return m.scanEntries(rows)
}

// LoadForFile returns the events recorded for path, newest first
func (m *Manager) LoadForFile(path string) ([]types.HistoryEntry, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	query := `
		SELECT id, timestamp, kind, path, COALESCE(target, ''), size
		FROM document_events
		WHERE path = ?
		ORDER BY id DESC
	`

	rows, err := m.db.Query(query, absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for file: %w", err)
	}
	defer rows.Close()

	return m.scanEntries(rows)
}

func (m *Manager) scanEntries(rows *sql.Rows) ([]types.HistoryEntry, error) {
	var entries []types.HistoryEntry

	for rows.Next() {
		var entry types.HistoryEntry
		var timestamp int64
		var kind string

		if err := rows.Scan(&entry.ID, &timestamp, &kind, &entry.Path, &entry.Target, &entry.Size); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		entry.Timestamp = time.Unix(0, timestamp)
		entry.Kind = types.EventKind(kind)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Hide removes path from the recent list without deleting its events
func (m *Manager) Hide(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	_, err = m.db.Exec(`INSERT OR REPLACE INTO hidden_paths (path) VALUES (?)`, absPath)
	if err != nil {
		return fmt.Errorf("failed to hide path: %w", err)
	}
	return nil
}

// Clear deletes all recorded events
func (m *Manager) Clear() error {
	if _, err := m.db.Exec("DELETE FROM document_events"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	if _, err := m.db.Exec("DELETE FROM hidden_paths"); err != nil {
		return fmt.Errorf("failed to clear hidden paths: %w", err)
	}
	return nil
}

// GetCount returns the number of recorded events
func (m *Manager) GetCount() (int, error) {
	var count int
	if err := m.db.QueryRow("SELECT COUNT(*) FROM document_events").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return count, nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
