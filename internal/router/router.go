package router

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/cafe-nour/cafe-service/internal/api/handler"
	"github.com/cafe-nour/cafe-service/internal/config"
	"github.com/cafe-nour/cafe-service/internal/db/repository"
	"github.com/cafe-nour/cafe-service/internal/middleware"
	"github.com/cafe-nour/cafe-service/internal/models"
	"github.com/cafe-nour/cafe-service/internal/service"
	"github.com/cafe-nour/cafe-service/internal/tables"
)

// Router handles HTTP routing
type Router struct {
	mux *http.ServeMux
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// New wires repositories, services and handlers into the HTTP surface.
func New(repos *repository.Repositories, identity service.Identity, health HealthChecker, cfg *config.Config, log *zap.Logger) *Router {
	orderService := service.NewOrderService(repos.Order, cfg.Tables.Count, log)
	reservationService := service.NewReservationService(repos.Reservation, cfg.Tables.Count, log)
	productService := service.NewProductService(repos.Product, log)
	userService := service.NewUserService(repos.User, log)
	statsService := service.NewStatsService(repos.Order, repos.Reservation)

	authHandler := handler.NewAuthHandler(identity)
	orderHandler := handler.NewOrderHandler(orderService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	productHandler := handler.NewProductHandler(productService)
	userHandler := handler.NewUserHandler(userService)
	dashboardHandler := handler.NewDashboardHandler(orderService, reservationService, statsService, tables.Options{
		Count:  cfg.Tables.Count,
		Window: cfg.Tables.Lookahead(),
	})

	r := &Router{mux: http.NewServeMux()}

	logger := middleware.Logger(log)
	auth := middleware.Auth(identity)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// Public routes
	r.mux.Handle("GET /health", logger(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if err := health.HealthCheck(req.Context()); err != nil {
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})))
	r.mux.Handle("POST /api/auth/login", logger(http.HandlerFunc(authHandler.Login)))
	r.mux.Handle("POST /api/auth/signup", logger(http.HandlerFunc(authHandler.Signup)))

	// Authenticated routes
	protected := http.NewServeMux()
	protected.HandleFunc("POST /auth/logout", authHandler.Logout)
	protected.HandleFunc("GET /auth/me", authHandler.Me)

	protected.HandleFunc("GET /tables", dashboardHandler.Tables)
	protected.HandleFunc("GET /dashboard/stats", dashboardHandler.Stats)

	protected.HandleFunc("GET /commandes", orderHandler.List)
	protected.HandleFunc("POST /commandes", orderHandler.Create)
	protected.HandleFunc("PUT /commandes/{id}/status", orderHandler.UpdateStatus)

	protected.HandleFunc("GET /reservations", reservationHandler.List)
	protected.HandleFunc("POST /reservations", reservationHandler.Create)
	protected.HandleFunc("PUT /reservations/{id}/status", reservationHandler.UpdateStatus)

	// Admin-only routes; the role gate runs before the handler, so a
	// non-admin request never reaches the store.
	admin := http.NewServeMux()
	admin.HandleFunc("GET /produits", productHandler.List)
	admin.HandleFunc("POST /produits", productHandler.Create)
	admin.HandleFunc("PUT /produits/{id}", productHandler.Update)
	admin.HandleFunc("DELETE /produits/{id}", productHandler.Delete)

	admin.HandleFunc("GET /utilisateurs", userHandler.List)
	admin.HandleFunc("PUT /utilisateurs/{id}/role", userHandler.SetRole)
	admin.HandleFunc("DELETE /utilisateurs/{id}/role", userHandler.RemoveRole)

	protected.Handle("/produits", adminOnly(admin))
	protected.Handle("/produits/", adminOnly(admin))
	protected.Handle("/utilisateurs", adminOnly(admin))
	protected.Handle("/utilisateurs/", adminOnly(admin))

	apiChain := logger(auth(protected))
	r.mux.Handle("/api/", http.StripPrefix("/api", apiChain))

	return r
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
