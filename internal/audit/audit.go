package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmwaite/passgate/internal/evaluate"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS audit_log (
	id              TEXT PRIMARY KEY,
	verdict         TEXT NOT NULL,
	reason          TEXT,
	score           REAL,
	signals_json    TEXT,
	password_length INTEGER NOT NULL,
	created_at      TEXT NOT NULL
);
`

// EnsureSchema creates the audit table if it does not exist. Callers share
// the denystore database handle.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate audit: %w", err)
	}
	return nil
}

// #endregion schema

// #region record

// Record writes one audit entry. A missing ID gets a fresh UUID; a zero
// CreatedAt gets the current time.
func Record(db *sql.DB, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	var scoreVal interface{}
	if entry.Score != nil {
		scoreVal = *entry.Score
	}
	_, err := db.Exec(
		`INSERT INTO audit_log (id, verdict, reason, score, signals_json, password_length, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Verdict,
		nullIfEmpty(entry.Reason),
		scoreVal,
		nullIfEmpty(entry.SignalsJSON),
		entry.PasswordLength,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record decision: %w", err)
	}
	return nil
}

// RecordResult builds an entry from an evaluation result and writes it.
// passwordLength is recorded instead of the password itself.
func RecordResult(db *sql.DB, result evaluate.Result, passwordLength int) error {
	entry := Entry{
		Verdict:        string(result.Verdict),
		Reason:         string(result.Reason),
		Score:          result.Score,
		PasswordLength: passwordLength,
	}
	if result.Signals != nil {
		raw, err := json.Marshal(result.Signals)
		if err != nil {
			return fmt.Errorf("marshal signals: %w", err)
		}
		entry.SignalsJSON = string(raw)
	}
	return Record(db, entry)
}

// #endregion record

// #region list

// List returns the n most recent entries, newest first.
func List(db *sql.DB, n int) ([]Entry, error) {
	rows, err := db.Query(
		`SELECT id, verdict, reason, score, signals_json, password_length, created_at
		 FROM audit_log ORDER BY created_at DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			reason  sql.NullString
			scoreV  sql.NullFloat64
			sigJSON sql.NullString
			created string
		)
		if err := rows.Scan(&e.ID, &e.Verdict, &reason, &scoreV, &sigJSON, &e.PasswordLength, &created); err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		e.Reason = reason.String
		if scoreV.Valid {
			v := scoreV.Float64
			e.Score = &v
		}
		e.SignalsJSON = sigJSON.String
		ts, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		e.CreatedAt = ts
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit log: %w", err)
	}
	return entries, nil
}

// #endregion list

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
