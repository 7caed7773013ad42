// Package history keeps a SQLite log of the assignments mobtimer has sent.
//
// The log is optional and append-only. Rows are ordered by their
// autoincrement id; created_at is informational and never used for ordering,
// so a skewed wall clock cannot reorder the log.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - assignments table
const currentSchemaVersion = 1

// Entry is one recorded assignment.
type Entry struct {
	ID        int64     `json:"id"`
	Command   string    `json:"command"`
	Room      string    `json:"room"`
	Navigator string    `json:"navigator"`
	Driver    string    `json:"driver"`
	Minutes   int       `json:"minutes"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the SQLite-backed history log.
type Store struct {
	db *sql.DB

	// Now stamps new entries. Defaults to time.Now.
	Now func() time.Time
}

// Open creates or opens the history database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history: %w", err)
	}

	// One CLI process, one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db, Now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends e and returns it with ID and CreatedAt filled in.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	e.CreatedAt = now().UTC().Truncate(time.Second)

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO assignments (command, room, navigator, driver, minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.Command, e.Room, e.Navigator, e.Driver, e.Minutes, e.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return Entry{}, fmt.Errorf("record assignment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("record assignment: %w", err)
	}
	e.ID = id
	return e, nil
}

// List returns the most recent entries, oldest first. A non-empty room limits
// the result to that room; limit <= 0 returns everything.
func (s *Store) List(ctx context.Context, room string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, command, room, navigator, driver, minutes, created_at FROM (
			SELECT * FROM assignments
			WHERE ? = '' OR room = ?
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id ASC
	`, room, room, limit)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e       Entry
			created string
		)
		if err := rows.Scan(&e.ID, &e.Command, &e.Room, &e.Navigator, &e.Driver, &e.Minutes, &created); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("scan assignment %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}

	return entries, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema is idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}
