package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teletrack/teletrack-cli/internal/api"
	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/repository"
)

type sessionService struct {
	api   SessionAPI
	cache repository.SessionCache
}

func NewSessionService(a SessionAPI, cache repository.SessionCache) SessionService {
	return &sessionService{api: a, cache: cache}
}

func (s *sessionService) Refresh(ctx context.Context) ([]*domain.WorkSession, error) {
	sessions, err := s.api.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.ReplaceAll(ctx, sessions); err != nil {
		return nil, fmt.Errorf("failed to update session cache: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) List(ctx context.Context) ([]*domain.WorkSession, error) {
	sessions, err := s.Refresh(ctx)
	if err == nil {
		return sessions, nil
	}
	if !errors.Is(err, api.ErrUnavailable) && !errors.Is(err, api.ErrTimeout) && !errors.Is(err, api.ErrRetryExhausted) {
		return nil, err
	}
	// Server unreachable: serve the last known copy.
	cached, cacheErr := s.cache.List(ctx)
	if cacheErr != nil {
		return nil, err
	}
	return cached, nil
}

func (s *sessionService) Active(ctx context.Context) (*domain.WorkSession, error) {
	sessions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, sess := range sessions {
		if sess.IsOpen() {
			return sess, nil
		}
	}
	return nil, nil
}

func (s *sessionService) Start(ctx context.Context, description string, at time.Time) (*domain.WorkSession, error) {
	sessions, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	for _, sess := range sessions {
		if sess.IsOpen() {
			return nil, ErrOpenSessionExists
		}
	}

	created, err := s.api.CreateSession(ctx, &domain.WorkSession{
		StartTime:   at,
		Description: description,
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *sessionService) Stop(ctx context.Context, at time.Time) (*domain.WorkSession, error) {
	sessions, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	var open *domain.WorkSession
	for _, sess := range sessions {
		if sess.IsOpen() {
			open = sess
			break
		}
	}
	if open == nil {
		return nil, ErrNoOpenSession
	}
	if err := open.Close(at); err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateSession(ctx, open)
	if err != nil {
		return nil, err
	}
	if _, err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *sessionService) Update(ctx context.Context, sess *domain.WorkSession) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if _, err := s.api.UpdateSession(ctx, sess); err != nil {
		return err
	}
	_, err := s.Refresh(ctx)
	return err
}

func (s *sessionService) UpdateDescription(ctx context.Context, id, description string) error {
	sessions, err := s.Refresh(ctx)
	if err != nil {
		return err
	}
	for _, sess := range sessions {
		if sess.ID == id {
			updated := *sess
			updated.Description = description
			return s.Update(ctx, &updated)
		}
	}
	return fmt.Errorf("session %s not found", id)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteSession(ctx, id); err != nil {
		return err
	}
	_, err := s.Refresh(ctx)
	return err
}
