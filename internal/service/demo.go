package service

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cafe-nour/cafe-service/internal/models"
)

// demoAccount is one of the two fixed fallback accounts.
type demoAccount struct {
	ID       uuid.UUID
	Email    string
	Password string
	Username string
	Role     models.UserRole
}

var demoAccounts = []demoAccount{
	{
		ID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Email:    "admin@demo.com",
		Password: "admin123",
		Username: "Admin Demo",
		Role:     models.RoleAdmin,
	},
	{
		ID:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Email:    "serveur@demo.com",
		Password: "serveur123",
		Username: "Serveur Demo",
		Role:     models.RoleServeur,
	},
}

// DemoAuth is the fallback identity provider used when no real auth
// configuration is present: two fixed accounts, sessions persisted in a
// local JSON file. Sign-up is disabled.
type DemoAuth struct {
	path string
	log  *zap.Logger

	mu       sync.Mutex
	sessions map[string]models.UserProfile // token -> profile
}

// NewDemoAuth creates the demo provider, loading any sessions persisted by
// a previous run. A missing or unreadable session file starts empty.
func NewDemoAuth(path string, log *zap.Logger) *DemoAuth {
	d := &DemoAuth{
		path:     path,
		log:      log,
		sessions: make(map[string]models.UserProfile),
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &d.sessions); err != nil {
			log.Warn("discarding corrupt demo session file", zap.String("path", path), zap.Error(err))
			d.sessions = make(map[string]models.UserProfile)
		}
	}

	return d
}

// SignIn checks the fixed demo credentials and persists a session token.
func (d *DemoAuth) SignIn(ctx context.Context, email, password string) (*Session, error) {
	for _, account := range demoAccounts {
		if account.Email != email || account.Password != password {
			continue
		}

		role := account.Role
		profile := models.UserProfile{
			ID:        account.ID,
			Username:  account.Username,
			Role:      &role,
			CreatedAt: time.Now(),
		}

		token := uuid.NewString()

		d.mu.Lock()
		d.sessions[token] = profile
		d.persistLocked()
		d.mu.Unlock()

		d.log.Info("demo sign-in", zap.String("username", account.Username))
		return &Session{Token: token, Profile: profile}, nil
	}

	return nil, ErrInvalidCredentials
}

// SignUp is disabled in demo mode; only the fixed accounts exist.
func (d *DemoAuth) SignUp(ctx context.Context, email, password, username string) (*models.UserProfile, error) {
	return nil, ErrSignupDisabled
}

// SignOut drops the session and persists the change.
func (d *DemoAuth) SignOut(ctx context.Context, token string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.sessions, token)
	d.persistLocked()
	return nil
}

// CurrentProfile resolves a session token.
func (d *DemoAuth) CurrentProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	profile, ok := d.sessions[token]
	if !ok {
		return nil, ErrInvalidToken
	}
	return &profile, nil
}

// persistLocked writes the session map to disk. Callers must hold d.mu.
func (d *DemoAuth) persistLocked() {
	data, err := json.Marshal(d.sessions)
	if err != nil {
		d.log.Error("failed to encode demo sessions", zap.Error(err))
		return
	}
	if err := os.WriteFile(d.path, data, 0o600); err != nil {
		d.log.Error("failed to persist demo sessions", zap.String("path", d.path), zap.Error(err))
	}
}
