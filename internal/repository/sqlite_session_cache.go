package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// timeLayout preserves sub-second precision across a cache round trip.
const timeLayout = time.RFC3339Nano

// SQLiteSessionCache implements SessionCache using a SQLite database.
type SQLiteSessionCache struct {
	db *sql.DB
}

// NewSQLiteSessionCache creates a new SQLiteSessionCache.
func NewSQLiteSessionCache(db *sql.DB) *SQLiteSessionCache {
	return &SQLiteSessionCache{db: db}
}

// ReplaceAll swaps the cached set for the given one inside a single
// transaction. On any failure the previous contents remain intact.
func (c *SQLiteSessionCache) ReplaceAll(ctx context.Context, sessions []*domain.WorkSession) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting cache transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session_cache`); err != nil {
		return fmt.Errorf("clearing session cache: %w", err)
	}

	fetchedAt := nowUTC()
	query := `INSERT INTO session_cache (id, start_time, end_time, description, fetched_at)
		VALUES (?, ?, ?, ?, ?)`
	for _, s := range sessions {
		_, err := tx.ExecContext(ctx, query,
			s.ID,
			s.StartTime.Format(timeLayout),
			nullableTimeToString(s.EndTime, timeLayout),
			s.Description,
			fetchedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting cached session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session cache: %w", err)
	}
	committed = true
	return nil
}

// List returns all cached sessions ordered by start time.
func (c *SQLiteSessionCache) List(ctx context.Context) ([]*domain.WorkSession, error) {
	query := `SELECT id, start_time, end_time, description
		FROM session_cache ORDER BY start_time`
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cached sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.WorkSession
	for rows.Next() {
		var s domain.WorkSession
		var startStr string
		var endStr sql.NullString

		if err := rows.Scan(&s.ID, &startStr, &endStr, &s.Description); err != nil {
			return nil, fmt.Errorf("scanning cached session: %w", err)
		}
		s.StartTime, err = time.Parse(timeLayout, startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing cached start_time: %w", err)
		}
		s.EndTime = parseNullableTime(endStr, timeLayout)

		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cached sessions: %w", err)
	}
	return sessions, nil
}

// Clear explicitly resets the cache to empty.
func (c *SQLiteSessionCache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM session_cache`); err != nil {
		return fmt.Errorf("clearing session cache: %w", err)
	}
	return nil
}
