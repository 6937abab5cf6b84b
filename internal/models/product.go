package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog item. Prices are in Tunisian dinar with
// three decimal places, hence decimal.Decimal rather than float64.
type Product struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	Nom       string          `db:"nom" json:"nom"`
	Prix      decimal.Decimal `db:"prix" json:"prix"`
	Actif     bool            `db:"actif" json:"actif"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// ProductRequest is used for product creation. Actif is a pointer so an
// absent field can be told apart from an explicit false; new products are
// active unless the request says otherwise.
type ProductRequest struct {
	Nom   string          `json:"nom" validate:"required,min=1,max=100"`
	Prix  decimal.Decimal `json:"prix"`
	Actif *bool           `json:"actif"`
}

// ProductUpdateRequest is used for partial product updates. Nil fields are
// left unchanged.
type ProductUpdateRequest struct {
	Nom   *string          `json:"nom" validate:"omitempty,min=1,max=100"`
	Prix  *decimal.Decimal `json:"prix"`
	Actif *bool            `json:"actif"`
}
