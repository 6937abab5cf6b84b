package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cafe-nour/cafe-service/internal/models"
)

// ProductRepository handles product data access
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List retrieves all products ordered by name
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, nom, prix, actif, created_at, updated_at
		FROM produits
		ORDER BY nom ASC
	`

	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := `
		SELECT id, nom, prix, actif, created_at, updated_at
		FROM produits
		WHERE id = $1
	`

	var product models.Product
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	query := `
		INSERT INTO produits (nom, prix, actif)
		VALUES ($1, $2, COALESCE($3, TRUE))
		RETURNING id, nom, prix, actif, created_at, updated_at
	`

	var product models.Product
	err := r.db.GetContext(ctx, &product, query, req.Nom, req.Prix, req.Actif)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// Update applies a partial update; nil fields keep their current value
func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, req models.ProductUpdateRequest) (*models.Product, error) {
	query := `
		UPDATE produits
		SET nom = COALESCE($1, nom),
		    prix = COALESCE($2, prix),
		    actif = COALESCE($3, actif),
		    updated_at = $4
		WHERE id = $5
		RETURNING id, nom, prix, actif, created_at, updated_at
	`

	var product models.Product
	err := r.db.GetContext(ctx, &product, query, req.Nom, req.Prix, req.Actif, time.Now(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &product, nil
}

// Delete deletes a product
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM produits
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
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
