package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafe-nour/cafe-service/internal/models"
	"github.com/cafe-nour/cafe-service/internal/service"
)

// fakeIdentity resolves one known token to a fixed profile.
type fakeIdentity struct {
	token   string
	profile models.UserProfile
}

func (f *fakeIdentity) SignIn(ctx context.Context, email, password string) (*service.Session, error) {
	return nil, service.ErrInvalidCredentials
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password, username string) (*models.UserProfile, error) {
	return nil, service.ErrSignupDisabled
}

func (f *fakeIdentity) SignOut(ctx context.Context, token string) error {
	return nil
}

func (f *fakeIdentity) CurrentProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	if token != f.token {
		return nil, service.ErrInvalidToken
	}
	profile := f.profile
	return &profile, nil
}

func identityFor(role *models.UserRole) *fakeIdentity {
	return &fakeIdentity{
		token: "good-token",
		profile: models.UserProfile{
			ID:       uuid.New(),
			Username: "sana",
			Role:     role,
		},
	}
}

func TestAuth_PopulatesContext(t *testing.T) {
	role := models.RoleServeur
	identity := identityFor(&role)

	var gotID uuid.UUID
	var gotRole models.UserRole
	handler := Auth(identity)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserID(r.Context())
		require.True(t, ok)
		gotID = id

		got, ok := GetUserRole(r.Context())
		require.True(t, ok)
		gotRole = got
	}))

	req := httptest.NewRequest(http.MethodGet, "/commandes", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, identity.profile.ID, gotID)
	assert.Equal(t, models.RoleServeur, gotRole)
}

func TestAuth_RejectsMissingOrBadToken(t *testing.T) {
	role := models.RoleServeur
	identity := identityFor(&role)

	handler := Auth(identity)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	cases := map[string]string{
		"no header":     "",
		"not bearer":    "Basic abc",
		"unknown token": "Bearer bad-token",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/commandes", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole_BlocksBeforeHandler(t *testing.T) {
	serveur := models.RoleServeur
	admin := models.RoleAdmin

	cases := []struct {
		name     string
		role     *models.UserRole
		wantCode int
		wantRun  bool
	}{
		{"admin allowed", &admin, http.StatusOK, true},
		{"serveur forbidden", &serveur, http.StatusForbidden, false},
		{"no role forbidden", nil, http.StatusForbidden, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ran := false
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ran = true
			})
			handler := Auth(identityFor(tc.role))(RequireRole(models.RoleAdmin)(inner))

			req := httptest.NewRequest(http.MethodDelete, "/produits/1", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantRun, ran)
		})
	}
}
