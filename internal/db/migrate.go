package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order; user_version tracks the last applied one.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS transcript_turns (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		phase      TEXT NOT NULL,
		role       TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_transcript_session
		ON transcript_turns (session_id, created_at);`,
}

// Migrate brings the schema up to the current version.
func Migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if _, err := db.Exec(migrations[i]); err != nil {
			return fmt.Errorf("applying migration %d: %w", i+1, err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			return fmt.Errorf("recording schema version %d: %w", i+1, err)
		}
	}
	return nil
}
