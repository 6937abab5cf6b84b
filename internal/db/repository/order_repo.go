package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/cafe-nour/cafe-service/internal/models"
)

// OrderRepository handles order data access
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List retrieves all orders newest first, each joined to the server's
// display name.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	query := `
		SELECT c.id, c.table_number, c.serveur_id, c.items_json, c.total,
		       c.status, c.created_at, c.updated_at,
		       COALESCE(p.username, '') AS serveur_name
		FROM commandes c
		LEFT JOIN profiles p ON p.id = c.serveur_id
		ORDER BY c.created_at DESC
	`

	orders := []models.Order{}
	err := r.db.SelectContext(ctx, &orders, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `
		SELECT c.id, c.table_number, c.serveur_id, c.items_json, c.total,
		       c.status, c.created_at, c.updated_at,
		       COALESCE(p.username, '') AS serveur_name
		FROM commandes c
		LEFT JOIN profiles p ON p.id = c.serveur_id
		WHERE c.id = $1
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// Create inserts a new order with its item snapshot
func (r *OrderRepository) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	query := `
		INSERT INTO commandes (table_number, serveur_id, items_json, total, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, table_number, serveur_id, items_json, total, status, created_at, updated_at
	`

	var created models.Order
	err := r.db.GetContext(
		ctx,
		&created,
		query,
		order.TableNumber,
		order.ServeurID,
		order.Items,
		order.Total,
		order.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &created, nil
}

// UpdateStatus sets the status on the identified order
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	query := `
		UPDATE commandes
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// HasOpenOrder reports whether the table already has an EN_COURS order
func (r *OrderRepository) HasOpenOrder(ctx context.Context, tableNumber int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM commandes
			WHERE table_number = $1 AND status = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, tableNumber, models.OrderStatusEnCours)
	if err != nil {
		return false, fmt.Errorf("failed to check open orders: %w", err)
	}

	return exists, nil
}

// CountCreatedBetween counts orders created within [start, end)
func (r *OrderRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM commandes
		WHERE created_at >= $1 AND created_at < $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

// SumPaidBetween sums the totals of PAYEE orders created within [start, end)
func (r *OrderRepository) SumPaidBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0) FROM commandes
		WHERE status = $1 AND created_at >= $2 AND created_at < $3
	`

	var sum decimal.Decimal
	err := r.db.GetContext(ctx, &sum, query, models.OrderStatusPayee, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum paid orders: %w", err)
	}

	return sum, nil
}

// CountByStatus counts all orders currently in the given status
func (r *OrderRepository) CountByStatus(ctx context.Context, status models.OrderStatus) (int, error) {
	query := `
		SELECT COUNT(*) FROM commandes
		WHERE status = $1
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, status)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders by status: %w", err)
	}

	return count, nil
}
