// Package api holds the JSON response and error vocabulary shared by all
// handlers. Error responses carry a localized message in a single
// {"error": ...} field.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cafe-nour/cafe-service/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes v as a JSON response body.
func RespondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// RespondError writes a JSON error body with the given status.
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter) {
	RespondError(w, http.StatusForbidden, "Accès refusé")
}

func MethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed, "Méthode non autorisée")
}

// FromError maps a service error onto an HTTP status and a localized
// message. Unknown errors become 500 with a generic message so internals
// never leak to clients.
func FromError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		RespondError(w, http.StatusNotFound, "Enregistrement introuvable")
	case errors.Is(err, service.ErrReservationConflict):
		RespondError(w, http.StatusConflict, "Une réservation existe déjà pour cette table à cette heure")
	case errors.Is(err, service.ErrInvalidTransition):
		RespondError(w, http.StatusUnprocessableEntity, "Changement de statut non autorisé")
	case errors.Is(err, service.ErrTableOccupied):
		RespondError(w, http.StatusConflict, "Cette table a déjà une commande en cours")
	case errors.Is(err, service.ErrEmptyOrder):
		RespondError(w, http.StatusBadRequest, "La commande ne contient aucun article")
	case errors.Is(err, service.ErrTotalMismatch):
		RespondError(w, http.StatusBadRequest, "Le total ne correspond pas aux articles")
	case errors.Is(err, service.ErrTableOutOfRange):
		RespondError(w, http.StatusBadRequest, "Numéro de table invalide")
	case errors.Is(err, service.ErrInvalidRole):
		RespondError(w, http.StatusBadRequest, "Rôle inconnu")
	case errors.Is(err, service.ErrInvalidCredentials):
		RespondError(w, http.StatusUnauthorized, "Identifiants incorrects")
	case errors.Is(err, service.ErrTooManyAttempts):
		RespondError(w, http.StatusTooManyRequests, "Trop de tentatives. Veuillez patienter quelques instants.")
	case errors.Is(err, service.ErrSignupDisabled):
		RespondError(w, http.StatusForbidden, "Inscription désactivée en mode démo. Utilisez les comptes de démonstration.")
	case errors.Is(err, service.ErrDuplicateAccount):
		RespondError(w, http.StatusConflict, "Un compte existe déjà avec cet email ou ce nom")
	case errors.Is(err, service.ErrInvalidToken):
		RespondError(w, http.StatusUnauthorized, "Session invalide ou expirée")
	default:
		RespondError(w, http.StatusInternalServerError, "Une erreur est survenue")
	}
}
