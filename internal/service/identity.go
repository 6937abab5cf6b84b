package service

import (
	"context"

	"github.com/cafe-nour/cafe-service/internal/models"
)

// Session is what a successful sign-in yields: a bearer token and the
// signed-in profile.
type Session struct {
	Token   string             `json:"token"`
	Profile models.UserProfile `json:"profile"`
}

// Identity is the session/identity capability. Two implementations exist:
// AuthService backed by Postgres and JWT, and DemoAuth backed by two fixed
// local accounts. The implementation is selected once at startup from
// configuration, never per call.
type Identity interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password, username string) (*models.UserProfile, error)
	SignOut(ctx context.Context, token string) error
	CurrentProfile(ctx context.Context, token string) (*models.UserProfile, error)
}
