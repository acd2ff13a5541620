package service

import (
	"context"
	"time"

	"github.com/teletrack/teletrack-cli/internal/api"
	"github.com/teletrack/teletrack-cli/internal/domain"
)

// SessionAPI is the slice of the REST client the session service uses.
type SessionAPI interface {
	ListSessions(ctx context.Context) ([]*domain.WorkSession, error)
	CreateSession(ctx context.Context, s *domain.WorkSession) (*domain.WorkSession, error)
	UpdateSession(ctx context.Context, s *domain.WorkSession) (*domain.WorkSession, error)
	DeleteSession(ctx context.Context, id string) error
}

// AuthAPI is the slice of the REST client the auth service uses.
type AuthAPI interface {
	Available(ctx context.Context) bool
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Register(ctx context.Context, reg api.Registration) (string, *domain.User, error)
	Me(ctx context.Context) (*domain.User, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, current, next string) error
	SetToken(token string)
}

// ChatAPI is the slice of the REST client the chat service uses.
type ChatAPI interface {
	ListGroups(ctx context.Context) ([]*domain.Group, error)
	ListMessages(ctx context.Context, groupID string, limit, offset int) ([]*domain.Message, error)
	SendMessage(ctx context.Context, groupID, content string) error
}

// SettingsAPI is the slice of the REST client the settings service uses.
type SettingsAPI interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, s *domain.Settings) error
	UpdateProfile(ctx context.Context, u *domain.User) error
	UploadAvatar(ctx context.Context, filename string, image []byte) error
	RemoveAvatar(ctx context.Context) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// Register creates an account and leaves the session logged in,
	// exactly as a successful Login would.
	Register(ctx context.Context, reg api.Registration) (*domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	ChangePassword(ctx context.Context, current, next string) error
}

type SessionService interface {
	// Refresh fetches the server's session list and mirrors it into
	// the local cache. The cache is replaced wholesale or left
	// untouched, never partially merged.
	Refresh(ctx context.Context) ([]*domain.WorkSession, error)
	// List refreshes, falling back to the cached copy when the server
	// is unreachable.
	List(ctx context.Context) ([]*domain.WorkSession, error)
	// Active returns the open session, or nil when none is running.
	Active(ctx context.Context) (*domain.WorkSession, error)
	Start(ctx context.Context, description string, at time.Time) (*domain.WorkSession, error)
	Stop(ctx context.Context, at time.Time) (*domain.WorkSession, error)
	Update(ctx context.Context, s *domain.WorkSession) error
	UpdateDescription(ctx context.Context, id, description string) error
	Delete(ctx context.Context, id string) error
}

type ReportService interface {
	BuildWeekly(ctx context.Context, now time.Time) (*domain.Report, error)
	BuildMonthly(ctx context.Context, now time.Time) (*domain.Report, error)
	BuildCustom(ctx context.Context, start, end time.Time) (*domain.Report, error)
	// Export writes the report in the given format. An empty path
	// derives a filename from the period; the written path is
	// returned either way.
	Export(report *domain.Report, format, path string) (string, error)
}

type ChatService interface {
	Groups(ctx context.Context) ([]*domain.Group, error)
	// FindGroup resolves a group by id or (case-insensitive) name.
	FindGroup(ctx context.Context, idOrName string) (*domain.Group, error)
	// Messages returns up to limit recent messages, oldest first.
	Messages(ctx context.Context, groupID string, limit int) ([]*domain.Message, error)
	Send(ctx context.Context, groupID, content string) error
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	UpdateWeekStart(ctx context.Context, ws domain.WeekStart) error
	UpdateProfile(ctx context.Context, u *domain.User) error
	// UpdateAvatar uploads the image file at path as the new profile
	// picture. Only image files up to 5 MB are accepted.
	UpdateAvatar(ctx context.Context, path string) error
	RemoveAvatar(ctx context.Context) error
}
