package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/authdemo/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_RememberMePersists(t *testing.T) {
	pipedPasswords(t)
	ctx := context.Background()
	app, store, out := newTestApp(t, &fakeAuth{users: []models.UserRecord{annRecord}}, "ann@x.com\nsecret1\ny\n")

	require.NoError(t, app.Login(ctx))
	assert.Contains(t, out.String(), models.MsgLoginSuccessful)
	assert.True(t, app.isLoggedIn())

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
}

func TestLogin_WithoutRememberMe(t *testing.T) {
	pipedPasswords(t)
	ctx := context.Background()
	app, store, _ := newTestApp(t, &fakeAuth{users: []models.UserRecord{annRecord}}, "ann@x.com\nsecret1\nn\n")

	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn())

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestLogin_WrongPassword(t *testing.T) {
	pipedPasswords(t)
	app, _, out := newTestApp(t, &fakeAuth{users: []models.UserRecord{annRecord}}, "ann@x.com\nwrong-pw\n\n")

	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), models.MsgInvalidCredentials)
	assert.False(t, app.isLoggedIn())
}

func TestLogin_ValidationStopsBeforeService(t *testing.T) {
	pipedPasswords(t)
	app, _, out := newTestApp(t, &fakeAuth{users: []models.UserRecord{annRecord}}, "not-an-email\n123\n\n")

	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "email:")
	assert.Contains(t, out.String(), "password:")
	assert.NotContains(t, out.String(), models.MsgInvalidCredentials)
}

func TestRegister_AutoLoginAndPersist(t *testing.T) {
	pipedPasswords(t)
	ctx := context.Background()
	auth := &fakeAuth{nextID: "7"}
	app, store, out := newTestApp(t, auth, "Cy\ncy@x.com\npass99\npass99\n")

	require.NoError(t, app.Register(ctx))
	assert.Contains(t, out.String(), models.MsgRegistered)
	assert.Contains(t, out.String(), "Welcome, Cy!")
	assert.True(t, app.isLoggedIn())

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-7", tok)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	pipedPasswords(t)
	app, _, out := newTestApp(t, &fakeAuth{users: []models.UserRecord{annRecord}}, "Ann\nann@x.com\nsecret1\nsecret1\n")

	require.NoError(t, app.Register(context.Background()))
	assert.Contains(t, out.String(), models.MsgEmailExists)
	assert.False(t, app.isLoggedIn())
}

func TestRegister_MismatchedConfirmation(t *testing.T) {
	pipedPasswords(t)
	auth := &fakeAuth{nextID: "7"}
	app, _, out := newTestApp(t, auth, "Cy\ncy@x.com\npass99\npass98\n")

	require.NoError(t, app.Register(context.Background()))
	assert.Contains(t, out.String(), "confirmPassword:")
	assert.Zero(t, auth.registers)
}

func TestRegister_InputError(t *testing.T) {
	app, _, _ := newTestApp(t, &fakeAuth{}, "")
	require.Error(t, app.Register(context.Background()))
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	auth := &fakeAuth{users: []models.UserRecord{annRecord}}
	app, store, out := newTestApp(t, auth, "")
	require.NoError(t, app.session.Login(ctx, annRecord.Identity(), "tok-1", true))

	require.NoError(t, app.Logout(ctx))
	assert.Contains(t, out.String(), models.MsgLoggedOut)
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, 1, auth.logouts)

	tok, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}
