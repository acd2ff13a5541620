package repository

import (
	"context"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// SessionCache is the local mirror of the server's work sessions.
// Writes are all-or-nothing: a refresh either replaces the whole set
// or leaves it untouched, never a partial merge.
type SessionCache interface {
	ReplaceAll(ctx context.Context, sessions []*domain.WorkSession) error
	List(ctx context.Context) ([]*domain.WorkSession, error)
	Clear(ctx context.Context) error
}

// CredentialStore persists the bearer token and a snapshot of the
// authenticated user for offline commands.
type CredentialStore interface {
	Save(ctx context.Context, token string, user *domain.User) error
	Load(ctx context.Context) (string, *domain.User, error)
	Delete(ctx context.Context) error
}
