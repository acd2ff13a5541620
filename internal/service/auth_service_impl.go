package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/teletrack/teletrack-cli/internal/api"
	"github.com/teletrack/teletrack-cli/internal/domain"
	"github.com/teletrack/teletrack-cli/internal/repository"
)

type authService struct {
	api   AuthAPI
	creds repository.CredentialStore
}

func NewAuthService(api AuthAPI, creds repository.CredentialStore) AuthService {
	return &authService{api: api, creds: creds}
}

// Login authenticates against the server and persists the token so
// later invocations start authenticated.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if !s.api.Available(ctx) {
		return nil, api.ErrUnavailable
	}
	token, user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.api.SetToken(token)
	if err := s.creds.Save(ctx, token, user); err != nil {
		return nil, fmt.Errorf("failed to store credentials: %w", err)
	}
	return user, nil
}

// Register signs up a new account and persists the returned token, so
// registering leaves the session logged in.
func (s *authService) Register(ctx context.Context, reg api.Registration) (*domain.User, error) {
	if reg.FirstName == "" || reg.LastName == "" || reg.Email == "" || reg.Password == "" {
		return nil, errors.New("first name, last name, email and password are required")
	}
	if !s.api.Available(ctx) {
		return nil, api.ErrUnavailable
	}
	token, user, err := s.api.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	s.api.SetToken(token)
	if err := s.creds.Save(ctx, token, user); err != nil {
		return nil, fmt.Errorf("failed to store credentials: %w", err)
	}
	return user, nil
}

// Logout tells the server to invalidate the token, then clears local
// credentials. The local state is cleared even when the server call
// fails; a stale token on an unreachable server is not worth keeping.
func (s *authService) Logout(ctx context.Context) error {
	apiErr := s.api.Logout(ctx)
	if err := s.creds.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	s.api.SetToken("")
	return apiErr
}

func (s *authService) CurrentUser(ctx context.Context) (*domain.User, error) {
	_, user, err := s.creds.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, current, next string) error {
	if next == "" {
		return errors.New("new password must not be empty")
	}
	return s.api.ChangePassword(ctx, current, next)
}
