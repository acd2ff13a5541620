package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// GetSettings fetches the user's stored preferences.
func (c *Client) GetSettings(ctx context.Context) (*domain.Settings, error) {
	var data settingsPayload
	if err := c.do(ctx, http.MethodGet, "/api/users/settings", nil, &data); err != nil {
		return nil, err
	}
	return data.toDomain(), nil
}

// UpdateSettings stores the user's preferences.
func (c *Client) UpdateSettings(ctx context.Context, s *domain.Settings) error {
	body := settingsPayload{CalendarWeekStart: string(s.CalendarWeekStart)}
	return c.do(ctx, http.MethodPut, "/api/users/settings", body, nil)
}

// UploadAvatar replaces the profile image. The server takes the image
// as a multipart settings update with a single profileImage part, so
// this bypasses the JSON request path. Uploads are not retried.
func (c *Client) UploadAvatar(ctx context.Context, filename string, image []byte) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("profileImage", filepath.Base(filename))
	if err != nil {
		return fmt.Errorf("building upload: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return fmt.Errorf("building upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("building upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.cfg.BaseURL+"/api/users/settings", &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-Id", uuid.New().String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return ErrUnavailable
		}
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode >= 400:
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, body)
	}
	return nil
}

// RemoveAvatar clears the stored profile image.
func (c *Client) RemoveAvatar(ctx context.Context) error {
	body := map[string]bool{"removeProfileImage": true}
	return c.do(ctx, http.MethodPut, "/api/users/settings", body, nil)
}

// UpdateProfile stores the editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, u *domain.User) error {
	body := map[string]string{
		"firstName":  u.FirstName,
		"lastName":   u.LastName,
		"address":    u.Address,
		"city":       u.City,
		"postalCode": u.PostalCode,
		"province":   u.Province,
		"country":    u.Country,
	}
	return c.do(ctx, http.MethodPut, "/api/users/profile", body, nil)
}
