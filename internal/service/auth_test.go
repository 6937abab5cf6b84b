package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafe-nour/cafe-service/internal/db/repository"
	"github.com/cafe-nour/cafe-service/internal/models"
)

// fakeAuthRepo is an in-memory AuthRepo for auth tests.
type fakeAuthRepo struct {
	byEmail map[string]*models.Profile
	roles   map[uuid.UUID]models.UserRole
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		byEmail: make(map[string]*models.Profile),
		roles:   make(map[uuid.UUID]models.UserRole),
	}
}

func (f *fakeAuthRepo) addUser(email, password, username string, role *models.UserRole) uuid.UUID {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	profile := &models.Profile{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	f.byEmail[email] = profile
	if role != nil {
		f.roles[profile.ID] = *role
	}
	return profile.ID
}

func (f *fakeAuthRepo) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	for _, p := range f.byEmail {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAuthRepo) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	p, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeAuthRepo) CreateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if _, ok := f.byEmail[profile.Email]; ok {
		return nil, repository.ErrConflict
	}
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	f.byEmail[profile.Email] = &profile
	return &profile, nil
}

func (f *fakeAuthRepo) GetRole(ctx context.Context, userID uuid.UUID) (*models.RoleAssignment, error) {
	role, ok := f.roles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.RoleAssignment{ID: uuid.New(), UserID: userID, Role: role}, nil
}

func newTestAuthService(repo AuthRepo) *AuthService {
	return NewAuthService(repo,
		JWTConfig{Secret: "test-secret", ExpiresIn: 1},
		ThrottleConfig{MaxAttempts: 3, Window: time.Minute},
		zap.NewNop())
}

func TestSignIn_Success(t *testing.T) {
	repo := newFakeAuthRepo()
	admin := models.RoleAdmin
	repo.addUser("sana@cafe.tn", "secret1", "sana", &admin)

	svc := newTestAuthService(repo)

	session, err := svc.SignIn(context.Background(), "sana@cafe.tn", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "sana", session.Profile.Username)
	require.NotNil(t, session.Profile.Role)
	assert.Equal(t, models.RoleAdmin, *session.Profile.Role)

	// The token resolves back to the same profile
	profile, err := svc.CurrentProfile(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Profile.ID, profile.ID)
}

func TestSignIn_BadPassword(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.addUser("sana@cafe.tn", "secret1", "sana", nil)

	svc := newTestAuthService(repo)

	_, err := svc.SignIn(context.Background(), "sana@cafe.tn", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), "nobody@cafe.tn", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_ThrottledAfterRepeatedFailures(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.addUser("sana@cafe.tn", "secret1", "sana", nil)

	svc := newTestAuthService(repo)

	for i := 0; i < 3; i++ {
		_, err := svc.SignIn(context.Background(), "sana@cafe.tn", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// Throttled now, even with the right password, and the error is
	// distinct from bad credentials.
	_, err := svc.SignIn(context.Background(), "sana@cafe.tn", "secret1")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	// Another identifier is unaffected
	_, err = svc.SignIn(context.Background(), "other@cafe.tn", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUp_CreatesPendingProfile(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := newTestAuthService(repo)

	profile, err := svc.SignUp(context.Background(), "nour@cafe.tn", "secret1", "nour")
	require.NoError(t, err)
	assert.Equal(t, "nour", profile.Username)
	assert.Nil(t, profile.Role)

	_, err = svc.SignUp(context.Background(), "nour@cafe.tn", "secret1", "nour2")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestCurrentProfile_RejectsGarbageToken(t *testing.T) {
	svc := newTestAuthService(newFakeAuthRepo())

	_, err := svc.CurrentProfile(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
