package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusEnCours OrderStatus = "EN_COURS"
	OrderStatusServie  OrderStatus = "SERVIE"
	OrderStatusAnnulee OrderStatus = "ANNULEE"
	OrderStatusPayee   OrderStatus = "PAYEE"
)

// orderTransitions is the allowed transition table. PAYEE and ANNULEE are
// terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusEnCours: {OrderStatusServie, OrderStatusAnnulee},
	OrderStatusServie:  {OrderStatusPayee},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusEnCours, OrderStatusServie, OrderStatusAnnulee, OrderStatusPayee:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a snapshot of a product taken at order-creation time.
// Later edits to the product do not alter it.
type OrderItem struct {
	ProduitID uuid.UUID       `json:"produit_id"`
	Nom       string          `json:"nom"`
	Prix      decimal.Decimal `json:"prix"`
	Qte       int             `json:"qte"`
}

// OrderItems is stored as a JSONB document in the items_json column.
type OrderItems []OrderItem

// Value implements driver.Valuer for JSONB storage.
func (items OrderItems) Value() (driver.Value, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB retrieval.
func (items *OrderItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	case nil:
		*items = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into OrderItems", src)
	}
}

// Total computes the sum of line totals (prix * qte) across all items.
func (items OrderItems) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Prix.Mul(decimal.NewFromInt(int64(item.Qte))))
	}
	return total
}

// Order represents a table order taken by a server
type Order struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	TableNumber int             `db:"table_number" json:"table_number"`
	ServeurID   uuid.UUID       `db:"serveur_id" json:"serveur_id"`
	Items       OrderItems      `db:"items_json" json:"items_json"`
	Total       decimal.Decimal `db:"total" json:"total"`
	Status      OrderStatus     `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`

	// Joined from profiles, not stored on the commandes row
	ServeurName string `db:"serveur_name" json:"serveur_name,omitempty"`
}

// OrderRequest is used for order creation
type OrderRequest struct {
	TableNumber int                `json:"table_number" validate:"required,min=1"`
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total       decimal.Decimal    `json:"total"`
}

// OrderItemRequest is a single snapshot line in an order creation request
type OrderItemRequest struct {
	ProduitID uuid.UUID       `json:"produit_id" validate:"required"`
	Nom       string          `json:"nom" validate:"required,min=1"`
	Prix      decimal.Decimal `json:"prix"`
	Qte       int             `json:"qte" validate:"required,min=1"`
}

// OrderStatusRequest is used for order status updates
type OrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=EN_COURS SERVIE ANNULEE PAYEE"`
}
