package denystore

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS denylist (
	entry      TEXT PRIMARY KEY,
	source     TEXT,
	created_at TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store manages denylist entries in SQLite, keeping the denylist a
// configuration input that operators can extend without a rebuild.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor

// DB returns the underlying *sql.DB for use by other packages (e.g. audit).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region add

// Add inserts one denylist entry, lowercased. Duplicates are ignored.
func (s *Store) Add(entry, source string) error {
	entry = strings.ToLower(strings.TrimSpace(entry))
	if entry == "" {
		return fmt.Errorf("empty denylist entry")
	}
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO denylist (entry, source, created_at) VALUES (?, ?, ?)`,
		entry, nullIfEmpty(source), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("add entry: %w", err)
	}
	return nil
}

// AddBatch inserts entries in one transaction and reports how many were
// new. Blank lines are skipped.
func (s *Store) AddBatch(entries []string, source string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	added := 0
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		res, err := tx.Exec(
			`INSERT OR IGNORE INTO denylist (entry, source, created_at) VALUES (?, ?, ?)`,
			entry, nullIfEmpty(source), now,
		)
		if err != nil {
			return 0, fmt.Errorf("add entry %q: %w", entry, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		added += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return added, nil
}

// #endregion add

// #region read

// Entries returns all denylist entries in insertion-independent order.
func (s *Store) Entries() ([]string, error) {
	rows, err := s.db.Query(`SELECT entry FROM denylist ORDER BY entry`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []string
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM denylist`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// #endregion read

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
