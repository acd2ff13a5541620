package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/teletrack/teletrack-cli/internal/domain"
)

// maxAvatarBytes mirrors the server's 5 MB upload cap.
const maxAvatarBytes = 5 << 20

var avatarExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type settingsService struct {
	api SettingsAPI
}

func NewSettingsService(api SettingsAPI) SettingsService {
	return &settingsService{api: api}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.api.GetSettings(ctx)
}

func (s *settingsService) UpdateWeekStart(ctx context.Context, ws domain.WeekStart) error {
	if ws != domain.WeekStartMonday && ws != domain.WeekStartSunday {
		return fmt.Errorf("invalid week start %q", ws)
	}
	return s.api.UpdateSettings(ctx, &domain.Settings{CalendarWeekStart: ws})
}

func (s *settingsService) UpdateProfile(ctx context.Context, u *domain.User) error {
	if u.Email == "" {
		return fmt.Errorf("email must not be empty")
	}
	return s.api.UpdateProfile(ctx, u)
}

func (s *settingsService) UpdateAvatar(ctx context.Context, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !avatarExtensions[ext] {
		return fmt.Errorf("%q is not an image file", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > maxAvatarBytes {
		return fmt.Errorf("image is too large: %d bytes, maximum is 5 MB", info.Size())
	}
	image, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.api.UploadAvatar(ctx, path, image)
}

func (s *settingsService) RemoveAvatar(ctx context.Context) error {
	return s.api.RemoveAvatar(ctx)
}
