package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cafe-nour/cafe-service/internal/api"
	"github.com/cafe-nour/cafe-service/internal/models"
	"github.com/cafe-nour/cafe-service/internal/service"
)

// UserHandler handles user administration requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /utilisateurs
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, users)
}

// SetRole handles PUT /utilisateurs/{id}/role
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		api.BadRequest(w, "Identifiant d'utilisateur invalide")
		return
	}

	var req models.RoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.userService.SetRole(r.Context(), userID, req.Role); err != nil {
		api.FromError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveRole handles DELETE /utilisateurs/{id}/role
func (h *UserHandler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		api.BadRequest(w, "Identifiant d'utilisateur invalide")
		return
	}

	if err := h.userService.RemoveRole(r.Context(), userID); err != nil {
		api.FromError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
