// Package history keeps an SQLite journal of hop activity. Every state
// change, cycle, and prune lands here so `tmuxhop history` can answer
// what happened while the user was elsewhere. Writes are best effort; a
// broken journal never blocks a hook.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Event is one journal entry.
type Event struct {
	ID      string
	Time    time.Time
	Command string
	PaneID  string
	State   string
	Detail  string
}

// Recorder accepts journal events. Recording may silently drop.
type Recorder interface {
	Record(ctx context.Context, event Event)
}

// Journal wraps the SQLite connection holding the event log.
type Journal struct {
	conn *sql.DB
	path string
	mu   sync.Mutex
}

// DefaultPath returns the journal location under XDG data,
// ~/.local/share/tmuxhop/history.db.
func DefaultPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "tmuxhop", "history.db")
}

// Open opens the journal at path, creating parent directories and the
// schema as needed. WAL mode keeps status-bar reads from blocking hook
// writes.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	j := &Journal{conn: conn, path: path}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return j, nil
}

// Close closes the underlying connection. Safe on nil.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.conn.Close()
}

// Path returns the journal file path.
func (j *Journal) Path() string {
	return j.path
}

func (j *Journal) migrate() error {
	_, err := j.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var current int
	row := j.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, `
			CREATE TABLE IF NOT EXISTS events (
				id TEXT PRIMARY KEY,
				created_at INTEGER NOT NULL,
				command TEXT NOT NULL,
				pane_id TEXT NOT NULL DEFAULT '',
				state TEXT NOT NULL DEFAULT '',
				detail TEXT NOT NULL DEFAULT ''
			)
		`},
		{2, `
			CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at)
		`},
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := j.conn.Exec(m.sql); err != nil {
			return fmt.Errorf("apply migration %d: %w", m.version, err)
		}
		if _, err := j.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
	}
	return nil
}

// Record appends an event, filling in the ID and time when unset.
// Errors are swallowed; the journal is an observer, not a dependency.
func (j *Journal) Record(ctx context.Context, event Event) {
	if j == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	_, _ = j.conn.ExecContext(ctx, `
		INSERT INTO events (id, created_at, command, pane_id, state, detail)
		VALUES (?, ?, ?, ?, ?, ?)
	`, event.ID, event.Time.Unix(), event.Command, event.PaneID, event.State, event.Detail)
}

// Recent returns the newest events, most recent first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	rows, err := j.conn.QueryContext(ctx, `
		SELECT id, created_at, command, pane_id, state, detail
		FROM events
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var createdAt int64
		if err := rows.Scan(&e.ID, &createdAt, &e.Command, &e.PaneID, &e.State, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Time = time.Unix(createdAt, 0)
		events = append(events, e)
	}
	return events, rows.Err()
}

// PruneOlderThan removes events older than the cutoff and reports how
// many were deleted.
func (j *Journal) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	res, err := j.conn.ExecContext(ctx, "DELETE FROM events WHERE created_at < ?", cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("prune events: %w", err)
	}
	return res.RowsAffected()
}
