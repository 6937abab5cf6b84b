package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cafe-nour/cafe-service/internal/api"
	"github.com/cafe-nour/cafe-service/internal/middleware"
	"github.com/cafe-nour/cafe-service/internal/models"
	"github.com/cafe-nour/cafe-service/internal/service"
)

// OrderHandler handles order-related requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles GET /commandes
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, orders)
}

// Create handles POST /commandes. The acting server id is stamped from the
// session, never taken from the request body.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	serveurID, ok := middleware.GetUserID(r.Context())
	if !ok {
		api.Unauthorized(w, "Authentification requise")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req, serveurID)
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondCreated(w, order)
}

// UpdateStatus handles PUT /commandes/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		api.BadRequest(w, "Identifiant de commande invalide")
		return
	}

	var req models.OrderStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := h.orderService.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, order)
}
