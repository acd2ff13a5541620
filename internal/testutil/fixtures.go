package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

var sessionIDCounter atomic.Int64

// SessionOption mutates a test work session.
type SessionOption func(*domain.WorkSession)

// WithID overrides the generated session id.
func WithID(id string) SessionOption {
	return func(s *domain.WorkSession) {
		s.ID = id
	}
}

// WithDescription sets the session description.
func WithDescription(d string) SessionOption {
	return func(s *domain.WorkSession) {
		s.Description = d
	}
}

// Open clears the end time, leaving the session running.
func Open() SessionOption {
	return func(s *domain.WorkSession) {
		s.EndTime = nil
	}
}

// NewClosedSession builds a closed session covering [start, start+dur).
func NewClosedSession(start time.Time, dur time.Duration, opts ...SessionOption) *domain.WorkSession {
	end := start.Add(dur)
	s := &domain.WorkSession{
		ID:        fmt.Sprintf("%d", sessionIDCounter.Add(1)),
		StartTime: start,
		EndTime:   &end,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewOpenSession builds a running session started at start.
func NewOpenSession(start time.Time, opts ...SessionOption) *domain.WorkSession {
	s := &domain.WorkSession{
		ID:        fmt.Sprintf("%d", sessionIDCounter.Add(1)),
		StartTime: start,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestUser builds a minimal profile for auth fixtures.
func NewTestUser(email string) *domain.User {
	return &domain.User{
		ID:        fmt.Sprintf("%d", sessionIDCounter.Add(1)),
		Email:     email,
		Nickname:  "tester",
		FirstName: "Test",
		LastName:  "User",
	}
}
