package handler

import (
	"net/http"
	"strings"

	"github.com/cafe-nour/cafe-service/internal/api"
	"github.com/cafe-nour/cafe-service/internal/models"
	"github.com/cafe-nour/cafe-service/internal/service"
)

// AuthHandler handles sign-in, sign-up and session requests
type AuthHandler struct {
	identity service.Identity
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identity service.Identity) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.identity.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, session)
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.identity.SignUp(r.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondCreated(w, profile)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		api.Unauthorized(w, "Authentification requise")
		return
	}

	if err := h.identity.SignOut(r.Context(), token); err != nil {
		api.FromError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		api.Unauthorized(w, "Authentification requise")
		return
	}

	profile, err := h.identity.CurrentProfile(r.Context(), token)
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, profile)
}

func bearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
