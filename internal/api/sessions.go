package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// ListSessions fetches all of the user's work sessions.
func (c *Client) ListSessions(ctx context.Context) ([]*domain.WorkSession, error) {
	var data []sessionPayload
	if err := c.do(ctx, http.MethodGet, "/api/worksessions", nil, &data); err != nil {
		return nil, err
	}

	sessions := make([]*domain.WorkSession, 0, len(data))
	for _, p := range data {
		s, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// CreateSession creates a session and returns it with the
// server-assigned id. An absent EndTime creates an open session.
func (c *Client) CreateSession(ctx context.Context, s *domain.WorkSession) (*domain.WorkSession, error) {
	var data sessionPayload
	if err := c.do(ctx, http.MethodPost, "/api/worksessions", newSessionBody(s), &data); err != nil {
		return nil, err
	}
	return data.toDomain()
}

// UpdateSession replaces the session's times and description.
func (c *Client) UpdateSession(ctx context.Context, s *domain.WorkSession) (*domain.WorkSession, error) {
	path := fmt.Sprintf("/api/worksessions/%s", s.ID)
	var data sessionPayload
	if err := c.do(ctx, http.MethodPut, path, newSessionBody(s), &data); err != nil {
		return nil, err
	}
	return data.toDomain()
}

// DeleteSession removes a session permanently.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/worksessions/%s", id), nil, nil)
}
