package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cafe-nour/cafe-service/internal/models"
)

func newTestDemoAuth(t *testing.T) (*DemoAuth, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.json")
	return NewDemoAuth(path, zap.NewNop()), path
}

func TestDemoAuth_SignInFixedAccounts(t *testing.T) {
	demo, _ := newTestDemoAuth(t)

	session, err := demo.SignIn(context.Background(), "admin@demo.com", "admin123")
	require.NoError(t, err)
	require.NotNil(t, session.Profile.Role)
	assert.Equal(t, models.RoleAdmin, *session.Profile.Role)

	session, err = demo.SignIn(context.Background(), "serveur@demo.com", "serveur123")
	require.NoError(t, err)
	require.NotNil(t, session.Profile.Role)
	assert.Equal(t, models.RoleServeur, *session.Profile.Role)
}

func TestDemoAuth_RejectsUnknownCredentials(t *testing.T) {
	demo, _ := newTestDemoAuth(t)

	_, err := demo.SignIn(context.Background(), "admin@demo.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = demo.SignIn(context.Background(), "nobody@demo.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDemoAuth_SignUpDisabled(t *testing.T) {
	demo, _ := newTestDemoAuth(t)

	_, err := demo.SignUp(context.Background(), "new@demo.com", "pw", "new")
	assert.ErrorIs(t, err, ErrSignupDisabled)
}

func TestDemoAuth_SessionsSurviveRestart(t *testing.T) {
	demo, path := newTestDemoAuth(t)

	session, err := demo.SignIn(context.Background(), "serveur@demo.com", "serveur123")
	require.NoError(t, err)

	// A fresh provider reading the same file still knows the session.
	reloaded := NewDemoAuth(path, zap.NewNop())
	profile, err := reloaded.CurrentProfile(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, "Serveur Demo", profile.Username)
}

// Orders and reservations carry NOT NULL foreign keys to profiles, so every
// demo account id must be seeded by the schema or demo mode could sign in
// but never write a row.
func TestDemoAccounts_SeededInSchema(t *testing.T) {
	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "0001_init.up.sql"))
	require.NoError(t, err)

	for _, account := range demoAccounts {
		assert.Contains(t, string(schema), account.ID.String(),
			"profile id %s for %s is not seeded", account.ID, account.Email)
		assert.Contains(t, string(schema), account.Email)
	}
}

func TestDemoAuth_SignOutDropsSession(t *testing.T) {
	demo, path := newTestDemoAuth(t)

	session, err := demo.SignIn(context.Background(), "admin@demo.com", "admin123")
	require.NoError(t, err)

	require.NoError(t, demo.SignOut(context.Background(), session.Token))

	_, err = demo.CurrentProfile(context.Background(), session.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The removal is persisted too.
	reloaded := NewDemoAuth(path, zap.NewNop())
	_, err = reloaded.CurrentProfile(context.Background(), session.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
