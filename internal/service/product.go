package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cafe-nour/cafe-service/internal/db/repository"
	"github.com/cafe-nour/cafe-service/internal/models"
)

// ProductRepo is the product data access needed by ProductService.
type ProductRepo interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, req models.ProductRequest) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, req models.ProductUpdateRequest) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductService handles product catalog logic
type ProductService struct {
	repo ProductRepo
	log  *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(repo ProductRepo, log *zap.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

// ListProducts lists the catalog by name ascending. An empty catalog is an
// empty slice, never nil.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// CreateProduct creates a catalog item. A request that does not mention
// actif creates an active product.
func (s *ProductService) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	if req.Actif == nil {
		actif := true
		req.Actif = &actif
	}

	product, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("nom", product.Nom))

	return product, nil
}

// UpdateProduct applies a partial update
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req models.ProductUpdateRequest) (*models.Product, error) {
	product, err := s.repo.Update(ctx, id, req)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return product, err
}

// DeleteProduct removes a catalog item. Existing order items keep their
// snapshot of it.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.log.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}
