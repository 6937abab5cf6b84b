package handler

import (
	"net/http"
	"time"

	"github.com/cafe-nour/cafe-service/internal/api"
	"github.com/cafe-nour/cafe-service/internal/service"
	"github.com/cafe-nour/cafe-service/internal/tables"
)

// DashboardHandler serves the table grid and the day summary
type DashboardHandler struct {
	orderService       *service.OrderService
	reservationService *service.ReservationService
	statsService       *service.StatsService
	tableOpts          tables.Options
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	orderService *service.OrderService,
	reservationService *service.ReservationService,
	statsService *service.StatsService,
	tableOpts tables.Options,
) *DashboardHandler {
	return &DashboardHandler{
		orderService:       orderService,
		reservationService: reservationService,
		statsService:       statsService,
		tableOpts:          tableOpts,
	}
}

// Tables handles GET /tables: it fetches the current orders and
// reservations and reconciles them into the per-table display state.
func (h *DashboardHandler) Tables(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		api.FromError(w, err)
		return
	}

	reservations, err := h.reservationService.ListReservations(r.Context())
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, tables.Reconcile(orders, reservations, time.Now(), h.tableOpts))
}

// Stats handles GET /dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.DashboardStats(r.Context())
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, stats)
}
