package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// FakeServer is an in-memory TeleTrack API for integration tests. It
// speaks the real wire format: every response wrapped in the
// { success, data, message } envelope, timestamps in RFC 3339.
type FakeServer struct {
	mu       sync.Mutex
	srv      *httptest.Server
	nextID   int
	Token    string
	Email    string
	Password string
	Sessions []FakeSession
	Groups   []FakeGroup
	Messages []FakeMessage
	WeekSt   string

	// Registered holds the account created through the register
	// endpoint, if any.
	Registered *fakeUserEntry

	// Avatar holds the filename of the last uploaded profile image.
	Avatar     string
	AvatarSize int
}

type FakeSession struct {
	ID          int     `json:"id"`
	StartTime   string  `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Description *string `json:"description"`
}

type FakeGroup struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Users []fakeUserEntry `json:"Users"`
}

type FakeMessage struct {
	ID        int            `json:"id"`
	GroupID   int            `json:"groupId"`
	UserID    int            `json:"userId"`
	Content   string         `json:"content"`
	CreatedAt string         `json:"createdAt"`
	User      *fakeUserEntry `json:"User"`
}

type fakeUserEntry struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// NewFakeServer starts the fake API and shuts it down with the test.
func NewFakeServer(t *testing.T) *FakeServer {
	t.Helper()
	f := &FakeServer{
		nextID:   100,
		Token:    "test-token",
		Email:    "ana@example.com",
		Password: "secret",
		WeekSt:   "monday",
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the server's base URL.
func (f *FakeServer) URL() string { return f.srv.URL }

// AddSession seeds a closed or open session and returns its id.
func (f *FakeServer) AddSession(start time.Time, end *time.Time, description string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s := FakeSession{ID: f.nextID, StartTime: start.Format(time.RFC3339)}
	if end != nil {
		v := end.Format(time.RFC3339)
		s.EndTime = &v
	}
	if description != "" {
		s.Description = &description
	}
	f.Sessions = append(f.Sessions, s)
	return f.nextID
}

// AddGroup seeds a chat group.
func (f *FakeServer) AddGroup(name string, members int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	g := FakeGroup{ID: f.nextID, Name: name}
	for i := 0; i < members; i++ {
		g.Users = append(g.Users, fakeUserEntry{ID: i + 1, Email: fmt.Sprintf("u%d@example.com", i+1)})
	}
	f.Groups = append(f.Groups, g)
	return f.nextID
}

// AddMessage seeds a group message. Messages are served newest first.
func (f *FakeServer) AddMessage(groupID int, author, content string, at time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.Messages = append(f.Messages, FakeMessage{
		ID:        f.nextID,
		GroupID:   groupID,
		UserID:    1,
		Content:   content,
		CreatedAt: at.Format(time.RFC3339),
		User:      &fakeUserEntry{ID: 1, Nickname: author},
	})
	return f.nextID
}

func writeEnvelope(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"success": status < 400, "message": message}
	if data != nil {
		body["data"] = data
	}
	_ = json.NewEncoder(w).Encode(body)
}

func (f *FakeServer) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := r.URL.Path
	switch {
	case path == "/api/health":
		writeEnvelope(w, http.StatusOK, map[string]string{"status": "ok"}, "")

	case path == "/api/auth/login" && r.Method == http.MethodPost:
		var body struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email != f.Email || body.Password != f.Password {
			writeEnvelope(w, http.StatusUnauthorized, nil, "invalid credentials")
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]any{
			"token": f.Token,
			"user":  f.userEntry(),
		}, "")

	case path == "/api/auth/register" && r.Method == http.MethodPost:
		var body struct{ FirstName, LastName, Nickname, Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email == "" || body.Password == "" {
			writeEnvelope(w, http.StatusBadRequest, nil, "invalid registration data")
			return
		}
		if body.Email == f.Email {
			writeEnvelope(w, http.StatusConflict, nil, "an account with this email already exists")
			return
		}
		f.Email = body.Email
		f.Password = body.Password
		f.Registered = &fakeUserEntry{ID: 2, Email: body.Email, Nickname: body.Nickname,
			FirstName: body.FirstName, LastName: body.LastName}
		writeEnvelope(w, http.StatusCreated, map[string]any{
			"token": f.Token,
			"user":  f.Registered,
		}, "")

	case !f.authorized(r):
		writeEnvelope(w, http.StatusUnauthorized, nil, "missing or invalid token")

	case path == "/api/auth/me":
		writeEnvelope(w, http.StatusOK, f.userEntry(), "")

	case path == "/api/auth/logout":
		writeEnvelope(w, http.StatusOK, nil, "logged out")

	case path == "/api/auth/change-password":
		var body struct{ CurrentPassword, NewPassword string }
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.CurrentPassword != f.Password {
			writeEnvelope(w, http.StatusBadRequest, nil, "current password is wrong")
			return
		}
		f.Password = body.NewPassword
		writeEnvelope(w, http.StatusOK, nil, "")

	case path == "/api/worksessions" && r.Method == http.MethodGet:
		writeEnvelope(w, http.StatusOK, f.Sessions, "")

	case path == "/api/worksessions" && r.Method == http.MethodPost:
		var s FakeSession
		_ = json.NewDecoder(r.Body).Decode(&s)
		f.nextID++
		s.ID = f.nextID
		f.Sessions = append(f.Sessions, s)
		writeEnvelope(w, http.StatusCreated, s, "")

	case strings.HasPrefix(path, "/api/worksessions/") && r.Method == http.MethodPut:
		id := strings.TrimPrefix(path, "/api/worksessions/")
		var s FakeSession
		_ = json.NewDecoder(r.Body).Decode(&s)
		for i := range f.Sessions {
			if fmt.Sprintf("%d", f.Sessions[i].ID) == id {
				s.ID = f.Sessions[i].ID
				f.Sessions[i] = s
				writeEnvelope(w, http.StatusOK, s, "")
				return
			}
		}
		writeEnvelope(w, http.StatusNotFound, nil, "session not found")

	case strings.HasPrefix(path, "/api/worksessions/") && r.Method == http.MethodDelete:
		id := strings.TrimPrefix(path, "/api/worksessions/")
		for i := range f.Sessions {
			if fmt.Sprintf("%d", f.Sessions[i].ID) == id {
				f.Sessions = append(f.Sessions[:i], f.Sessions[i+1:]...)
				writeEnvelope(w, http.StatusOK, nil, "")
				return
			}
		}
		writeEnvelope(w, http.StatusNotFound, nil, "session not found")

	case path == "/api/groups":
		writeEnvelope(w, http.StatusOK, f.Groups, "")

	case strings.HasPrefix(path, "/api/messages/group/"):
		id := strings.TrimPrefix(path, "/api/messages/group/")
		var out []FakeMessage
		for i := len(f.Messages) - 1; i >= 0; i-- {
			if fmt.Sprintf("%d", f.Messages[i].GroupID) == id {
				out = append(out, f.Messages[i])
			}
		}
		if out == nil {
			out = []FakeMessage{}
		}
		writeEnvelope(w, http.StatusOK, map[string]any{"messages": out}, "")

	case path == "/api/messages" && r.Method == http.MethodPost:
		var body struct {
			GroupID string `json:"groupId"`
			Content string `json:"content"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.nextID++
		var gid int
		_, _ = fmt.Sscanf(body.GroupID, "%d", &gid)
		f.Messages = append(f.Messages, FakeMessage{
			ID:        f.nextID,
			GroupID:   gid,
			UserID:    1,
			Content:   body.Content,
			CreatedAt: time.Now().Format(time.RFC3339),
			User:      f.userEntry(),
		})
		writeEnvelope(w, http.StatusCreated, nil, "")

	case path == "/api/users/settings" && r.Method == http.MethodGet:
		writeEnvelope(w, http.StatusOK, map[string]string{"calendarWeekStart": f.WeekSt}, "")

	case path == "/api/users/settings" && r.Method == http.MethodPut:
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			file, header, err := r.FormFile("profileImage")
			if err != nil {
				writeEnvelope(w, http.StatusBadRequest, nil, "missing profileImage")
				return
			}
			data, _ := io.ReadAll(file)
			file.Close()
			f.Avatar = header.Filename
			f.AvatarSize = len(data)
			writeEnvelope(w, http.StatusOK, map[string]string{"profileImage": header.Filename}, "")
			return
		}
		var body struct {
			CalendarWeekStart  string `json:"calendarWeekStart"`
			RemoveProfileImage bool   `json:"removeProfileImage"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.RemoveProfileImage {
			f.Avatar = ""
			f.AvatarSize = 0
			writeEnvelope(w, http.StatusOK, nil, "")
			return
		}
		f.WeekSt = body.CalendarWeekStart
		writeEnvelope(w, http.StatusOK, nil, "")

	case path == "/api/users/profile" && r.Method == http.MethodPut:
		writeEnvelope(w, http.StatusOK, nil, "")

	default:
		writeEnvelope(w, http.StatusNotFound, nil, "not found")
	}
}

func (f *FakeServer) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+f.Token
}

func (f *FakeServer) userEntry() *fakeUserEntry {
	return &fakeUserEntry{ID: 1, Email: f.Email, Nickname: "ana", FirstName: "Ana", LastName: "García"}
}
