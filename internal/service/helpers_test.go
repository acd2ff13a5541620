package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/teletrack/teletrack-cli/internal/api"
	"github.com/teletrack/teletrack-cli/internal/domain"
)

// fakeSessionAPI is an in-memory stand-in for the REST client. Setting
// failWith makes every call fail, simulating an unreachable server.
type fakeSessionAPI struct {
	mu       sync.Mutex
	sessions []*domain.WorkSession
	failWith error
	nextID   int
	calls    int
}

func (f *fakeSessionAPI) ListSessions(ctx context.Context) ([]*domain.WorkSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]*domain.WorkSession, len(f.sessions))
	copy(out, f.sessions)
	return out, nil
}

func (f *fakeSessionAPI) CreateSession(ctx context.Context, s *domain.WorkSession) (*domain.WorkSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.nextID++
	created := *s
	created.ID = fmt.Sprintf("%d", f.nextID)
	f.sessions = append(f.sessions, &created)
	return &created, nil
}

func (f *fakeSessionAPI) UpdateSession(ctx context.Context, s *domain.WorkSession) (*domain.WorkSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i, existing := range f.sessions {
		if existing.ID == s.ID {
			updated := *s
			f.sessions[i] = &updated
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("session %s not found", s.ID)
}

func (f *fakeSessionAPI) DeleteSession(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	for i, existing := range f.sessions {
		if existing.ID == id {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("session %s not found", id)
}

type fakeAuthAPI struct {
	token       string
	user        *domain.User
	unavailable bool
	loginErr    error
	registerErr error
	logoutErr   error
	gotToken    string
	logoutSeen  bool
	registered  *api.Registration
}

func (f *fakeAuthAPI) Available(ctx context.Context) bool { return !f.unavailable }

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.token, f.user, nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, reg api.Registration) (string, *domain.User, error) {
	if f.registerErr != nil {
		return "", nil, f.registerErr
	}
	f.registered = &reg
	user := domain.User{FirstName: reg.FirstName, LastName: reg.LastName, Nickname: reg.Nickname, Email: reg.Email}
	return f.token, &user, nil
}

func (f *fakeAuthAPI) Me(ctx context.Context) (*domain.User, error) { return f.user, nil }

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logoutSeen = true
	return f.logoutErr
}

func (f *fakeAuthAPI) ChangePassword(ctx context.Context, current, next string) error { return nil }

func (f *fakeAuthAPI) SetToken(token string) { f.gotToken = token }

type fakeChatAPI struct {
	groups   []*domain.Group
	messages []*domain.Message
	sent     []string
	sentTo   []string
	err      error
}

func (f *fakeChatAPI) ListGroups(ctx context.Context) ([]*domain.Group, error) {
	return f.groups, f.err
}

func (f *fakeChatAPI) ListMessages(ctx context.Context, groupID string, limit, offset int) ([]*domain.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.messages) {
		limit = len(f.messages)
	}
	out := make([]*domain.Message, limit)
	copy(out, f.messages[:limit])
	return out, nil
}

func (f *fakeChatAPI) SendMessage(ctx context.Context, groupID, content string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, content)
	f.sentTo = append(f.sentTo, groupID)
	return nil
}
