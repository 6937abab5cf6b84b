package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cafe-nour/cafe-service/internal/db/repository"
	"github.com/cafe-nour/cafe-service/internal/models"
)

// OrderRepo is the order data access needed by OrderService.
type OrderRepo interface {
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	HasOpenOrder(ctx context.Context, tableNumber int) (bool, error)
}

// OrderService handles order-related business logic
type OrderService struct {
	repo       OrderRepo
	tableCount int
	log        *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(repo OrderRepo, tableCount int, log *zap.Logger) *OrderService {
	return &OrderService{
		repo:       repo,
		tableCount: tableCount,
		log:        log,
	}
}

// ListOrders lists all orders newest first. An empty result is an empty
// slice, never nil, so list responses encode as [] rather than null.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return order, err
}

// CreateOrder creates a new EN_COURS order with the given item snapshot.
// The submitted total must equal the recomputed sum of line totals, and the
// table must not already have an open order.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest, serveurID uuid.UUID) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if req.TableNumber < 1 || req.TableNumber > s.tableCount {
		return nil, ErrTableOutOfRange
	}

	items := make(models.OrderItems, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Qte < 1 {
			return nil, ErrEmptyOrder
		}
		if item.Prix.IsNegative() {
			return nil, ErrTotalMismatch
		}
		items = append(items, models.OrderItem{
			ProduitID: item.ProduitID,
			Nom:       item.Nom,
			Prix:      item.Prix,
			Qte:       item.Qte,
		})
	}

	// The persisted total is trusted for historical records, so never
	// store a submitted total that disagrees with the snapshot.
	total := items.Total()
	if !req.Total.Equal(total) {
		return nil, ErrTotalMismatch
	}

	open, err := s.repo.HasOpenOrder(ctx, req.TableNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check table: %w", err)
	}
	if open {
		return nil, ErrTableOccupied
	}

	order := models.Order{
		TableNumber: req.TableNumber,
		ServeurID:   serveurID,
		Items:       items,
		Total:       total,
		Status:      models.OrderStatusEnCours,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.String("order_id", created.ID.String()),
		zap.Int("table", created.TableNumber),
		zap.String("total", created.Total.String()))

	return created, nil
}

// UpdateOrderStatus applies a status transition after validating it against
// the order's transition table.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidTransition
	}

	order, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.log.Info("order status updated",
		zap.String("order_id", id.String()),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)))

	return s.GetOrder(ctx, id)
}
