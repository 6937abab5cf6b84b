package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cafe-nour/cafe-service/internal/api"
	"github.com/cafe-nour/cafe-service/internal/middleware"
	"github.com/cafe-nour/cafe-service/internal/models"
	"github.com/cafe-nour/cafe-service/internal/service"
)

// ReservationHandler handles reservation-related requests
type ReservationHandler struct {
	reservationService *service.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// List handles GET /reservations
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservationService.ListReservations(r.Context())
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, reservations)
}

// Create handles POST /reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	createdBy, ok := middleware.GetUserID(r.Context())
	if !ok {
		api.Unauthorized(w, "Authentification requise")
		return
	}

	reservation, err := h.reservationService.CreateReservation(r.Context(), req, createdBy)
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondCreated(w, reservation)
}

// UpdateStatus handles PUT /reservations/{id}/status
func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		api.BadRequest(w, "Identifiant de réservation invalide")
		return
	}

	var req models.ReservationStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reservation, err := h.reservationService.UpdateReservationStatus(r.Context(), id, req.Status)
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, reservation)
}
