package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafe-nour/cafe-service/internal/db/repository"
	"github.com/cafe-nour/cafe-service/internal/models"
)

// JWTConfig holds configuration for JWT token generation
type JWTConfig struct {
	Secret    string
	ExpiresIn int // hours
}

// ThrottleConfig bounds interactive sign-in attempts per identifier.
type ThrottleConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// AuthRepo is the profile data access needed by AuthService.
type AuthRepo interface {
	GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error)
	GetRole(ctx context.Context, userID uuid.UUID) (*models.RoleAssignment, error)
}

// AuthService is the Postgres-backed identity provider: bcrypt credentials
// on profiles, HS256 session tokens, per-identifier sign-in throttling.
type AuthService struct {
	repo      AuthRepo
	jwtConfig JWTConfig
	attempts  *gocache.Cache
	throttle  ThrottleConfig
	log       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(repo AuthRepo, jwtConfig JWTConfig, throttle ThrottleConfig, log *zap.Logger) *AuthService {
	if throttle.MaxAttempts <= 0 {
		throttle.MaxAttempts = 5
	}
	if throttle.Window <= 0 {
		throttle.Window = time.Minute
	}
	return &AuthService{
		repo:      repo,
		jwtConfig: jwtConfig,
		attempts:  gocache.New(throttle.Window, 2*throttle.Window),
		throttle:  throttle,
		log:       log,
	}
}

// Claims represents JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SignIn authenticates a user and returns a session. Repeated failures
// within the throttle window yield ErrTooManyAttempts instead of
// ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if s.isThrottled(email) {
		s.log.Warn("sign-in throttled", zap.String("email", email))
		return nil, ErrTooManyAttempts
	}

	profile, err := s.repo.GetProfileByEmail(ctx, email)
	if err != nil {
		s.recordAttempt(email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		s.recordAttempt(email)
		return nil, ErrInvalidCredentials
	}

	s.attempts.Delete(attemptKey(email))

	userProfile, err := s.profileWithRole(ctx, profile)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(profile.ID, userProfile.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &Session{Token: token, Profile: *userProfile}, nil
}

// SignUp creates a profile with no role assignment. The account stays
// pending until an admin assigns a role.
func (s *AuthService) SignUp(ctx context.Context, email, password, username string) (*models.UserProfile, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.repo.CreateProfile(ctx, models.Profile{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	})
	if errors.Is(err, repository.ErrConflict) {
		return nil, ErrDuplicateAccount
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("profile created",
		zap.String("user_id", created.ID.String()),
		zap.String("username", created.Username))

	return &models.UserProfile{
		ID:        created.ID,
		Username:  created.Username,
		CreatedAt: created.CreatedAt,
	}, nil
}

// SignOut is a no-op for stateless JWT sessions; the token simply expires.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	return nil
}

// CurrentProfile resolves the token to a fresh profile with its role.
func (s *AuthService) CurrentProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	profile, err := s.repo.GetProfileByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}

	return s.profileWithRole(ctx, profile)
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *AuthService) profileWithRole(ctx context.Context, profile *models.Profile) (*models.UserProfile, error) {
	userProfile := &models.UserProfile{
		ID:        profile.ID,
		Username:  profile.Username,
		CreatedAt: profile.CreatedAt,
	}

	assignment, err := s.repo.GetRole(ctx, profile.ID)
	switch {
	case err == nil:
		userProfile.Role = &assignment.Role
	case errors.Is(err, repository.ErrNotFound):
		// Pending activation, no role yet
	default:
		return nil, err
	}

	return userProfile, nil
}

func (s *AuthService) generateToken(userID uuid.UUID, role *models.UserRole) (string, error) {
	expirationTime := time.Now().Add(time.Duration(s.jwtConfig.ExpiresIn) * time.Hour)

	roleClaim := ""
	if role != nil {
		roleClaim = string(*role)
	}

	claims := &Claims{
		UserID: userID.String(),
		Role:   roleClaim,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.Secret))
}

func attemptKey(email string) string {
	return "login:" + email
}

func (s *AuthService) isThrottled(email string) bool {
	if count, ok := s.attempts.Get(attemptKey(email)); ok {
		return count.(int) >= s.throttle.MaxAttempts
	}
	return false
}

func (s *AuthService) recordAttempt(email string) {
	key := attemptKey(email)
	if _, err := s.attempts.IncrementInt(key, 1); err != nil {
		s.attempts.Set(key, 1, s.throttle.Window)
	}
}
