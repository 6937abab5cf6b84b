package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleServeur UserRole = "SERVEUR"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleServeur
}

// Profile is a row in the profiles table. It carries the credentials used
// by the postgres identity provider.
type Profile struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never expose in JSON
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RoleAssignment is a row in the user_roles table. A profile without an
// assignment is pending activation.
type RoleAssignment struct {
	ID     uuid.UUID `db:"id" json:"id"`
	UserID uuid.UUID `db:"user_id" json:"user_id"`
	Role   UserRole  `db:"role" json:"role"`
}

// UserProfile is a profile joined with its role assignment, as consumed by
// the user administration view and the session. Role is nil until an admin
// assigns one.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      *UserRole `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the profile carries the ADMIN role.
func (p UserProfile) IsAdmin() bool {
	return p.Role != nil && *p.Role == RoleAdmin
}

// RoleRequest is used to assign or change a user's role
type RoleRequest struct {
	Role UserRole `json:"role" validate:"required,oneof=ADMIN SERVEUR"`
}

// LoginRequest is used for interactive sign-in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is used for account creation
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required,min=2,max=50"`
}
