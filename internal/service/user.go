package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cafe-nour/cafe-service/internal/db/repository"
	"github.com/cafe-nour/cafe-service/internal/models"
)

// UserRepo is the profile/role data access needed by UserService.
type UserRepo interface {
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	ListRoles(ctx context.Context) ([]models.RoleAssignment, error)
	GetRole(ctx context.Context, userID uuid.UUID) (*models.RoleAssignment, error)
	InsertRole(ctx context.Context, userID uuid.UUID, role models.UserRole) error
	UpdateRole(ctx context.Context, userID uuid.UUID, role models.UserRole) error
	DeleteRole(ctx context.Context, userID uuid.UUID) error
}

// UserService handles user administration
type UserService struct {
	repo UserRepo
	log  *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(repo UserRepo, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// ListUsers fetches all profiles and all role assignments and joins them by
// user id. A profile with no assignment has a nil role.
func (s *UserService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	profiles, err := s.repo.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	rolesByUser := make(map[uuid.UUID]models.UserRole, len(assignments))
	for _, a := range assignments {
		rolesByUser[a.UserID] = a.Role
	}

	users := make([]models.UserProfile, 0, len(profiles))
	for _, p := range profiles {
		user := models.UserProfile{
			ID:        p.ID,
			Username:  p.Username,
			CreatedAt: p.CreatedAt,
		}
		if role, ok := rolesByUser[p.ID]; ok {
			user.Role = &role
		}
		users = append(users, user)
	}

	return users, nil
}

// SetRole assigns a role to a user: updates the existing assignment if one
// exists, inserts one otherwise. Never produces a duplicate.
func (s *UserService) SetRole(ctx context.Context, userID uuid.UUID, role models.UserRole) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	_, err := s.repo.GetRole(ctx, userID)
	switch {
	case err == nil:
		err = s.repo.UpdateRole(ctx, userID, role)
	case errors.Is(err, repository.ErrNotFound):
		err = s.repo.InsertRole(ctx, userID, role)
	default:
		return err
	}
	if err != nil {
		return err
	}

	s.log.Info("role assigned",
		zap.String("user_id", userID.String()),
		zap.String("role", string(role)))

	return nil
}

// RemoveRole deletes a user's role assignment
func (s *UserService) RemoveRole(ctx context.Context, userID uuid.UUID) error {
	err := s.repo.DeleteRole(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.log.Info("role removed", zap.String("user_id", userID.String()))
	return nil
}
