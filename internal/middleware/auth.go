package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/cafe-nour/cafe-service/internal/api"
	"github.com/cafe-nour/cafe-service/internal/models"
	"github.com/cafe-nour/cafe-service/internal/service"
)

// contextKey is a type for context keys
type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
	usernameKey contextKey = "username"
)

// Auth middleware resolves the bearer token to a profile through the
// configured identity provider and stores the acting user in the request
// context.
func Auth(identity service.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				api.Unauthorized(w, "Authentification requise")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				api.Unauthorized(w, "Format d'authentification invalide")
				return
			}

			profile, err := identity.CurrentProfile(r.Context(), parts[1])
			if err != nil {
				api.Unauthorized(w, "Session invalide ou expirée")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, profile.ID)
			ctx = context.WithValue(ctx, usernameKey, profile.Username)
			if profile.Role != nil {
				ctx = context.WithValue(ctx, userRoleKey, *profile.Role)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a subtree on the acting user's role. It runs before the
// handler, so a forbidden request never touches the underlying store.
func RequireRole(roles ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r.Context())
			if !ok {
				api.Forbidden(w)
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			api.Forbidden(w)
		})
	}
}

// GetUserID extracts the acting user's id from the request context.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// GetUserRole extracts the acting user's role from the request context.
// Absent for profiles pending activation.
func GetUserRole(ctx context.Context) (models.UserRole, bool) {
	role, ok := ctx.Value(userRoleKey).(models.UserRole)
	return role, ok
}

// GetUsername extracts the acting user's display name from the request
// context.
func GetUsername(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	return name, ok
}
