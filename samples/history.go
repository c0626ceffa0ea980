// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: samples/history.go
// Summary: SQLite record of displayed samples.
// Usage: The catalog consults Recent to avoid showing the same file twice in a row.

package samples

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one displayed sample.
type Entry struct {
	Path     string
	Language string
	ShownAt  time.Time
	Frames   uint64
}

// History stores which samples were shown.
type History interface {
	// Record appends an entry.
	Record(e Entry) error
	// Recent returns up to n distinct paths, most recently shown first.
	Recent(n int) ([]string, error)
	// Count returns how many times path has been shown.
	Count(path string) (int, error)
	// Close releases the store.
	Close() error
}

// NopHistory remembers nothing.
type NopHistory struct{}

func (NopHistory) Record(Entry) error           { return nil }
func (NopHistory) Recent(int) ([]string, error) { return nil, nil }
func (NopHistory) Count(string) (int, error)    { return 0, nil }
func (NopHistory) Close() error                 { return nil }

const historySchema = `
CREATE TABLE IF NOT EXISTS shown (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    language TEXT NOT NULL DEFAULT '',
    shown_at INTEGER NOT NULL,        -- UnixNano
    frames INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_shown_path ON shown(path);
`

// SQLiteHistory implements History on a SQLite database.
type SQLiteHistory struct {
	db *sql.DB
}

// OpenHistory opens or creates the history database at dbPath.
func OpenHistory(dbPath string) (*SQLiteHistory, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteHistory{db: db}, nil
}

// Record appends e.
func (h *SQLiteHistory) Record(e Entry) error {
	_, err := h.db.Exec(
		"INSERT INTO shown (path, language, shown_at, frames) VALUES (?, ?, ?, ?)",
		e.Path, e.Language, e.ShownAt.UnixNano(), int64(e.Frames),
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// Recent returns up to n distinct paths, most recently shown first.
func (h *SQLiteHistory) Recent(n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := h.db.Query(
		"SELECT path FROM shown GROUP BY path ORDER BY MAX(id) DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("query recent samples: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// Count returns how many times path has been shown.
func (h *SQLiteHistory) Count(path string) (int, error) {
	var n int
	err := h.db.QueryRow("SELECT COUNT(*) FROM shown WHERE path = ?", path).Scan(&n)
	return n, err
}

// Close closes the database.
func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}
