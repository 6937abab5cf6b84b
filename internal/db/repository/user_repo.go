package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cafe-nour/cafe-service/internal/models"
)

// UserRepository handles profile and role-assignment data access
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListProfiles retrieves all profiles ordered by username
func (r *UserRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM profiles
		ORDER BY username ASC
	`

	profiles := []models.Profile{}
	err := r.db.SelectContext(ctx, &profiles, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return profiles, nil
}

// ListRoles retrieves all role assignments
func (r *UserRepository) ListRoles(ctx context.Context) ([]models.RoleAssignment, error) {
	query := `
		SELECT id, user_id, role
		FROM user_roles
	`

	roles := []models.RoleAssignment{}
	err := r.db.SelectContext(ctx, &roles, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return roles, nil
}

// GetProfileByID retrieves a profile by ID
func (r *UserRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM profiles
		WHERE id = $1
	`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// GetProfileByEmail retrieves a profile by email
func (r *UserRepository) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM profiles
		WHERE email = $1
	`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return &profile, nil
}

// CreateProfile creates a new profile. Duplicate username or email maps to
// ErrConflict.
func (r *UserRepository) CreateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, password_hash, created_at
	`

	var created models.Profile
	err := r.db.GetContext(ctx, &created, query, profile.Username, profile.Email, profile.PasswordHash)
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &created, nil
}

// GetRole retrieves the role assignment for a user, if any
func (r *UserRepository) GetRole(ctx context.Context, userID uuid.UUID) (*models.RoleAssignment, error) {
	query := `
		SELECT id, user_id, role
		FROM user_roles
		WHERE user_id = $1
	`

	var assignment models.RoleAssignment
	err := r.db.GetContext(ctx, &assignment, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &assignment, nil
}

// InsertRole creates a role assignment for a user
func (r *UserRepository) InsertRole(ctx context.Context, userID uuid.UUID, role models.UserRole) error {
	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
	`

	_, err := r.db.ExecContext(ctx, query, userID, role)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to insert role: %w", err)
	}

	return nil
}

// UpdateRole changes the existing role assignment for a user
func (r *UserRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role models.UserRole) error {
	query := `
		UPDATE user_roles
		SET role = $1
		WHERE user_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, role, userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteRole removes the role assignment for a user
func (r *UserRepository) DeleteRole(ctx context.Context, userID uuid.UUID) error {
	query := `
		DELETE FROM user_roles
		WHERE user_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
