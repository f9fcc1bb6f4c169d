// Package migrations brings the history database schema up to date.
package migrations

import (
	"database/sql"
	"fmt"
)

// Migration is one schema step, applied once and recorded in schema_migrations
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// All lists the schema steps in the order they are applied.
// Version 1 is the base schema; append new steps, never edit old ones.
var All = []Migration{
	{
		Version: 1,
		Name:    "document events",
		SQL: `
			CREATE TABLE IF NOT EXISTS document_events (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp DATETIME NOT NULL,
				kind TEXT NOT NULL,
				path TEXT NOT NULL,
				target TEXT,
				size INTEGER NOT NULL DEFAULT 0
			);
			CREATE INDEX IF NOT EXISTS idx_events_timestamp ON document_events(timestamp DESC);
			CREATE INDEX IF NOT EXISTS idx_events_kind ON document_events(kind);
		`,
	},
	{
		Version: 2,
		Name:    "recent files index",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_events_path_timestamp ON document_events(path, timestamp DESC);
		`,
	},
	{
		Version: 3,
		Name:    "hidden paths",
		SQL: `
			-- Paths removed from the recent list keep their event history
			CREATE TABLE IF NOT EXISTS hidden_paths (
				path TEXT PRIMARY KEY,
				hidden_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
}

// Run applies every migration newer than the recorded version.
// Each step runs in its own transaction together with its bookkeeping row.
func Run(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, err := Version(db)
	if err != nil {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	for _, m := range All {
		if m.Version <= current {
			continue
		}
		if err := apply(db, m); err != nil {
			return err
		}
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.SQL); err != nil {
		return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}
	return tx.Commit()
}

// Version returns the highest applied migration, 0 for a fresh database
func Version(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}
