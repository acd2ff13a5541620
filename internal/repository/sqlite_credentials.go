package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// SQLiteCredentialStore implements CredentialStore using a SQLite
// database. There is at most one credential row.
type SQLiteCredentialStore struct {
	db *sql.DB
}

// NewSQLiteCredentialStore creates a new SQLiteCredentialStore.
func NewSQLiteCredentialStore(db *sql.DB) *SQLiteCredentialStore {
	return &SQLiteCredentialStore{db: db}
}

func (s *SQLiteCredentialStore) Save(ctx context.Context, token string, user *domain.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user snapshot: %w", err)
	}

	query := `INSERT INTO credentials (id, token, user_json, saved_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token,
			user_json = excluded.user_json, saved_at = excluded.saved_at`
	if _, err := s.db.ExecContext(ctx, query, token, string(userJSON), nowUTC()); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	return nil
}

func (s *SQLiteCredentialStore) Load(ctx context.Context) (string, *domain.User, error) {
	var token, userJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT token, user_json FROM credentials WHERE id = 1`,
	).Scan(&token, &userJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil, fmt.Errorf("credentials: %w", ErrNotFound)
		}
		return "", nil, fmt.Errorf("loading credentials: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return "", nil, fmt.Errorf("decoding user snapshot: %w", err)
	}
	return token, &user, nil
}

func (s *SQLiteCredentialStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = 1`); err != nil {
		return fmt.Errorf("deleting credentials: %w", err)
	}
	return nil
}
