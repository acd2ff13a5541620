package api

import (
	"context"
	"net/http"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// Login authenticates with email and password and returns the bearer
// token plus the user profile. The token is NOT installed on the
// client; callers decide where to store it.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	body := map[string]string{"email": email, "password": password}
	var data struct {
		Token string      `json:"token"`
		User  userPayload `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &data); err != nil {
		return "", nil, err
	}
	return data.Token, data.User.toDomain(), nil
}

// Register creates a new account and returns the bearer token plus the
// created profile, so a fresh install can sign up and be logged in with
// one call. Like Login, the token is not installed on the client.
func (c *Client) Register(ctx context.Context, reg Registration) (string, *domain.User, error) {
	body := map[string]string{
		"firstName": reg.FirstName,
		"lastName":  reg.LastName,
		"nickname":  reg.Nickname,
		"email":     reg.Email,
		"password":  reg.Password,
	}
	var data struct {
		Token string      `json:"token"`
		User  userPayload `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &data); err != nil {
		return "", nil, err
	}
	return data.Token, data.User.toDomain(), nil
}

// Registration carries the fields of a sign-up request.
type Registration struct {
	FirstName string
	LastName  string
	Nickname  string
	Email     string
	Password  string
}

// Me returns the authenticated user's profile, validating the current
// token in the process.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var data userPayload
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &data); err != nil {
		return nil, err
	}
	return data.toDomain(), nil
}

// Logout invalidates the current token server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return c.do(ctx, http.MethodPost, "/api/auth/change-password", body, nil)
}
