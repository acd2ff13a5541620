package cli

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teletrack/teletrack-cli/internal/api"
	"github.com/teletrack/teletrack-cli/internal/repository"
	"github.com/teletrack/teletrack-cli/internal/service"
	"github.com/teletrack/teletrack-cli/internal/testutil"
)

// testApp wires a full App against the fake API server and an
// in-memory cache DB for CLI integration tests.
func testApp(t *testing.T) (*testutil.FakeServer, *App) {
	t.Helper()

	fake := testutil.NewFakeServer(t)
	client := api.NewClient(api.Config{
		BaseURL:    fake.URL(),
		TimeoutMs:  2000,
		MaxRetries: 0,
	}, nil)
	client.SetToken(fake.Token)

	db := testutil.NewTestDB(t)
	cache := repository.NewSQLiteSessionCache(db)
	creds := repository.NewSQLiteCredentialStore(db)

	sessions := service.NewSessionService(client, cache)
	app := &App{
		Auth:     service.NewAuthService(client, creds),
		Sessions: sessions,
		Reports:  service.NewReportService(sessions),
		Chat:     service.NewChatService(client),
		Settings: service.NewSettingsService(client),
	}
	return fake, app
}

// executeCmd runs a cobra command, capturing everything the handlers
// print to stdout.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	out, err := io.ReadAll(pr)
	require.NoError(t, err)
	return string(out), execErr
}

func TestLoginCmd(t *testing.T) {
	fake, app := testApp(t)

	out, err := executeCmd(t, app, "login", "--email", fake.Email, "--password", fake.Password)
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Ana García")

	out, err = executeCmd(t, app, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, fake.Email)
}

func TestLoginCmd_BadCredentials(t *testing.T) {
	fake, app := testApp(t)

	_, err := executeCmd(t, app, "login", "--email", fake.Email, "--password", "nope")
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestRegisterCmd(t *testing.T) {
	fake, app := testApp(t)

	out, err := executeCmd(t, app, "register",
		"--first-name", "Bruno", "--last-name", "Díaz", "--nickname", "bruno",
		"--email", "bruno@example.com", "--password", "secret2")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, Bruno Díaz")
	require.NotNil(t, fake.Registered)
	assert.Equal(t, "bruno@example.com", fake.Registered.Email)

	out, err = executeCmd(t, app, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "bruno@example.com")
}

func TestRegisterCmd_DuplicateEmail(t *testing.T) {
	fake, app := testApp(t)

	_, err := executeCmd(t, app, "register",
		"--first-name", "Ana", "--last-name", "García",
		"--email", fake.Email, "--password", "secret")
	assert.Error(t, err)
	assert.Nil(t, fake.Registered)
}

func TestWhoamiCmd_NotLoggedIn(t *testing.T) {
	_, app := testApp(t)

	_, err := executeCmd(t, app, "whoami")
	assert.ErrorIs(t, err, service.ErrNotLoggedIn)
}

func TestSessionLifecycleCmds(t *testing.T) {
	_, app := testApp(t)

	out, err := executeCmd(t, app, "session", "start", "-d", "writing docs")
	require.NoError(t, err)
	assert.Contains(t, out, "Session started at")

	out, err = executeCmd(t, app, "session", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Running")
	assert.Contains(t, out, "writing docs")

	_, err = executeCmd(t, app, "session", "start")
	assert.ErrorIs(t, err, service.ErrOpenSessionExists)

	out, err = executeCmd(t, app, "session", "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "Session stopped after")

	out, err = executeCmd(t, app, "session", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No session running.")
}

func TestSessionListAndRemoveCmds(t *testing.T) {
	fake, app := testApp(t)
	start := time.Now().Add(-3 * time.Hour)
	end := start.Add(time.Hour)
	id := fake.AddSession(start, &end, "old work")

	out, err := executeCmd(t, app, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "old work")

	out, err = executeCmd(t, app, "session", "remove", "999999")
	assert.Error(t, err)

	out, err = executeCmd(t, app, "session", "remove", itoa(id))
	require.NoError(t, err)
	assert.Contains(t, out, "Removed session")

	out, err = executeCmd(t, app, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded.")
}

func TestSessionEditCmd(t *testing.T) {
	fake, app := testApp(t)
	start := time.Now().Add(-3 * time.Hour)
	end := start.Add(time.Hour)
	id := fake.AddSession(start, &end, "before")

	out, err := executeCmd(t, app, "session", "edit", itoa(id), "-d", "after")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated session")

	out, err = executeCmd(t, app, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "after")
	assert.NotContains(t, out, "before")

	_, err = executeCmd(t, app, "session", "edit", itoa(id), "--end", "not-a-time")
	assert.Error(t, err)
}

func TestReportCmd(t *testing.T) {
	fake, app := testApp(t)
	// Anchor to today's midnight so the session always falls inside
	// the current week, whatever the wall clock says.
	y, m, d := time.Now().Date()
	start := time.Date(y, m, d, 0, 1, 0, 0, time.Local)
	end := start.Add(time.Hour)
	fake.AddSession(start, &end, "this week")

	out, err := executeCmd(t, app, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "HOURS REPORT")
	assert.Contains(t, out, "this week")

	_, err = executeCmd(t, app, "report", "--from", "2024-03-10")
	assert.Error(t, err, "--from without --to is rejected")

	_, err = executeCmd(t, app, "report", "--from", "2024-03-10", "--to", "2024-03-01")
	assert.Error(t, err, "inverted range is rejected")

	_, err = executeCmd(t, app, "report", "--week", "--from", "2024-03-01", "--to", "2024-03-10")
	assert.Error(t, err, "predefined period and custom range are exclusive")
}

func TestReportCmd_ExportWritesFile(t *testing.T) {
	fake, app := testApp(t)
	y, m, d := time.Now().Date()
	start := time.Date(y, m, d, 0, 1, 0, 0, time.Local)
	end := start.Add(time.Hour)
	fake.AddSession(start, &end, "exported")

	path := t.TempDir() + "/report.csv"
	out, err := executeCmd(t, app, "report", "--export", "csv", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exported")
}

func TestChatCmds(t *testing.T) {
	fake, app := testApp(t)
	gid := fake.AddGroup("Backend", 3)
	fake.AddMessage(gid, "bruno", "standup in 5", time.Now().Add(-time.Minute))

	out, err := executeCmd(t, app, "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "Backend")
	assert.Contains(t, out, "3")

	out, err = executeCmd(t, app, "chat", "send", "backend", "on my way")
	require.NoError(t, err)
	assert.Contains(t, out, "Sent to Backend")

	_, err = executeCmd(t, app, "chat", "send", "missing", "hello")
	assert.ErrorIs(t, err, service.ErrGroupNotFound)

	longMsg := strings.Repeat("x", 501)
	_, err = executeCmd(t, app, "chat", "send", "backend", longMsg)
	assert.ErrorIs(t, err, service.ErrMessageTooLong)
}

func TestOptionsCmds(t *testing.T) {
	fake, app := testApp(t)
	_, err := executeCmd(t, app, "login", "--email", fake.Email, "--password", fake.Password)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "Week starts on")
	assert.Contains(t, out, "monday")

	out, err = executeCmd(t, app, "options", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Week starts on")

	out, err = executeCmd(t, app, "options", "week-start", "sunday")
	require.NoError(t, err)
	assert.Contains(t, out, "sunday")
	assert.Equal(t, "sunday", fake.WeekSt)

	_, err = executeCmd(t, app, "options", "week-start", "friday")
	assert.Error(t, err)
}

func TestOptionsAvatarCmd(t *testing.T) {
	fake, app := testApp(t)

	path := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o600))

	out, err := executeCmd(t, app, "options", "avatar", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Profile picture updated.")
	assert.Equal(t, "me.png", fake.Avatar)
	assert.Equal(t, 4, fake.AvatarSize)

	out, err = executeCmd(t, app, "options", "avatar", "--remove")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile picture removed.")
	assert.Empty(t, fake.Avatar)

	_, err = executeCmd(t, app, "options", "avatar", "notes.txt")
	assert.Error(t, err, "non-image file is rejected before upload")

	_, err = executeCmd(t, app, "options", "avatar")
	assert.Error(t, err)
}

func TestCalendarCmd_NonInteractive(t *testing.T) {
	fake, app := testApp(t)
	y, m, d := time.Now().Date()
	start := time.Date(y, m, d, 0, 1, 0, 0, time.Local)
	end := start.Add(time.Hour)
	fake.AddSession(start, &end, "today")

	out, err := executeCmd(t, app, "calendar")
	require.NoError(t, err)
	assert.Contains(t, out, strings.ToUpper(time.Now().Month().String()))
	assert.Contains(t, out, "Mon")

	out, err = executeCmd(t, app, "calendar", "--month", "2024-03")
	require.NoError(t, err)
	assert.Contains(t, out, "MARCH 2024")

	_, err = executeCmd(t, app, "calendar", "--month", "March")
	assert.Error(t, err)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
