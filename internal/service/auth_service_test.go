package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teletrack/teletrack-cli/internal/api"
	"github.com/teletrack/teletrack-cli/internal/repository"
	"github.com/teletrack/teletrack-cli/internal/testutil"
)

func newAuthFixture(t *testing.T) (*fakeAuthAPI, repository.CredentialStore, AuthService) {
	t.Helper()
	fake := &fakeAuthAPI{token: "tok-1", user: testutil.NewTestUser("ana@example.com")}
	creds := repository.NewSQLiteCredentialStore(testutil.NewTestDB(t))
	return fake, creds, NewAuthService(fake, creds)
}

func TestAuthService_LoginPersistsCredentials(t *testing.T) {
	fake, creds, svc := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "tok-1", fake.gotToken, "token handed to the client for later calls")

	token, stored, err := creds.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, user.Email, stored.Email)
}

func TestAuthService_LoginFailureStoresNothing(t *testing.T) {
	fake, creds, svc := newAuthFixture(t)
	fake.loginErr = api.ErrUnauthorized
	ctx := context.Background()

	_, err := svc.Login(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	_, _, err = creds.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAuthService_RegisterLogsIn(t *testing.T) {
	fake, creds, svc := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, api.Registration{
		FirstName: "Ana",
		LastName:  "García",
		Nickname:  "ana",
		Email:     "ana@example.com",
		Password:  "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "tok-1", fake.gotToken, "registration leaves the session logged in")

	token, stored, err := creds.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "Ana", stored.FirstName)
}

func TestAuthService_RegisterRejectsMissingFields(t *testing.T) {
	fake, creds, svc := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, api.Registration{Email: "ana@example.com", Password: "secret"})
	assert.Error(t, err)
	assert.Nil(t, fake.registered, "no server call for an incomplete form")

	_, _, err = creds.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAuthService_LogoutClearsEvenWhenServerFails(t *testing.T) {
	fake, creds, svc := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)

	fake.logoutErr = errors.New("boom")
	err = svc.Logout(ctx)
	assert.Error(t, err, "server error surfaces")
	assert.True(t, fake.logoutSeen)

	_, _, err = creds.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound, "local credentials are gone regardless")
}

func TestAuthService_CurrentUser(t *testing.T) {
	_, _, svc := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = svc.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestAuthService_ChangePasswordRejectsEmpty(t *testing.T) {
	_, _, svc := newAuthFixture(t)
	assert.Error(t, svc.ChangePassword(context.Background(), "old", ""))
}

func TestAuthService_LoginUnreachableServer(t *testing.T) {
	fake, _, svc := newAuthFixture(t)
	fake.unavailable = true

	_, err := svc.Login(context.Background(), "ana@example.com", "secret")
	assert.ErrorIs(t, err, api.ErrUnavailable)
}
