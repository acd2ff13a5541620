package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent;
// ALTER TABLE duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// migrations holds the cache schema. The session cache mirrors the
// server's worksessions resource; credentials hold the bearer token
// and a profile snapshot for offline use. Timestamps are stored as
// RFC 3339 text.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS session_cache (
		id          TEXT PRIMARY KEY,
		start_time  TEXT NOT NULL,
		end_time    TEXT,
		description TEXT NOT NULL DEFAULT '',
		fetched_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_cache_start ON session_cache(start_time)`,

	`CREATE TABLE IF NOT EXISTS credentials (
		id        INTEGER PRIMARY KEY CHECK (id = 1),
		token     TEXT NOT NULL,
		user_json TEXT NOT NULL,
		saved_at  TEXT NOT NULL
	)`,
}
