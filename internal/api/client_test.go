package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.TimeoutMs = 2000
	cfg.MaxRetries = 1
	return NewClient(cfg, NoopObserver{})
}

func TestClient_LoginReturnsTokenAndUser(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"token":"tok-123","user":{"id":7,"email":"ana@example.com","nickname":"ana"}}}`))
	}))

	token, user, err := c.Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "7", user.ID)
	assert.Equal(t, "ana", user.Nickname)
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	c.SetToken("tok-123")

	_, err := c.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_ListSessionsDecodesOpenAndClosed(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[
			{"id":1,"startTime":"2024-03-10T09:00:00Z","endTime":"2024-03-10T11:30:00Z","description":"refactor"},
			{"id":2,"startTime":"2024-03-10T14:00:00","endTime":null,"description":null}
		]}`))
	}))

	sessions, err := c.ListSessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, "1", sessions[0].ID)
	assert.False(t, sessions[0].IsOpen())
	assert.Equal(t, 150*time.Minute, sessions[0].Duration())
	assert.Equal(t, "refactor", sessions[0].Description)

	assert.Equal(t, "2", sessions[1].ID)
	assert.True(t, sessions[1].IsOpen(), "null endTime decodes as open session")
	assert.Empty(t, sessions[1].Description)
}

func TestClient_UnauthorizedIsSentinel(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"token expired"}`))
	}))

	_, err := c.ListSessions(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_NotFoundIsSentinel(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	err := c.DeleteSession(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_RetriesServerErrorsThenGivesUp(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.ListSessions(context.Background())
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, int32(2), calls.Load(), "one attempt plus one retry")
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"endTime must be after startTime"}`))
	}))

	err := c.SendMessage(context.Background(), "1", "hi")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRetryExhausted)
	assert.Contains(t, err.Error(), "endTime must be after startTime")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_DoesNotRetryEnvelopeRejections(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"success":false,"message":"message too long"}`))
	}))

	err := c.SendMessage(context.Background(), "1", "hi")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRetryExhausted, "a 200 the server rejected in the envelope is definitive")
	assert.Contains(t, err.Error(), "message too long")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Register(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"token":"tok-456","user":{"id":9,"email":"bruno@example.com","firstName":"Bruno"}}}`))
	}))

	token, user, err := c.Register(context.Background(), Registration{
		FirstName: "Bruno", LastName: "Díaz", Email: "bruno@example.com", Password: "secret2",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-456", token)
	assert.Equal(t, "Bruno", user.FirstName)
}

func TestClient_UnreachableServer(t *testing.T) {
	cfg := DefaultConfig()
	// Port 1 on loopback: nothing listens here.
	cfg.BaseURL = "http://127.0.0.1:1"
	cfg.TimeoutMs = 500
	cfg.MaxRetries = 0
	c := NewClient(cfg, NoopObserver{})

	_, err := c.ListSessions(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ListMessages(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/messages/group/4", r.URL.Path)
		require.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"success":true,"data":{"messages":[
			{"id":10,"groupId":4,"userId":7,"content":"hola","createdAt":"2024-03-10T09:00:00Z",
			 "User":{"id":7,"nickname":"ana","firstName":"Ana","lastName":"García"}}
		]}}`))
	}))

	msgs, err := c.ListMessages(context.Background(), "4", 50, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hola", msgs[0].Content)
	assert.Equal(t, "Ana García", msgs[0].Author)
}

func TestParseAPITime_OffsetNaiveFallsBackToLocal(t *testing.T) {
	got, err := parseAPITime("2024-03-10T14:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 14, 30, 0, 0, time.Local), got)

	_, err = parseAPITime("not-a-time")
	assert.Error(t, err)
}
