package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cafe-nour/cafe-service/internal/db/repository"
	"github.com/cafe-nour/cafe-service/internal/models"
)

// fakeProductRepo is an in-memory ProductRepo for service tests.
type fakeProductRepo struct {
	products map[uuid.UUID]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*models.Product)}
}

func (f *fakeProductRepo) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	actif := true
	if req.Actif != nil {
		actif = *req.Actif
	}
	product := models.Product{
		ID:        uuid.New(),
		Nom:       req.Nom,
		Prix:      req.Prix,
		Actif:     actif,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.products[product.ID] = &product
	copied := product
	return &copied, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id uuid.UUID, req models.ProductUpdateRequest) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if req.Nom != nil {
		p.Nom = *req.Nom
	}
	if req.Prix != nil {
		p.Prix = *req.Prix
	}
	if req.Actif != nil {
		p.Actif = *req.Actif
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func newTestProductService(repo ProductRepo) *ProductService {
	return NewProductService(repo, zap.NewNop())
}

func TestCreateProduct_ActiveByDefault(t *testing.T) {
	svc := newTestProductService(newFakeProductRepo())

	created, err := svc.CreateProduct(context.Background(), models.ProductRequest{
		Nom:  "Express",
		Prix: decimal.RequireFromString("2.500"),
	})
	require.NoError(t, err)
	assert.True(t, created.Actif)
}

func TestCreateProduct_ExplicitInactive(t *testing.T) {
	svc := newTestProductService(newFakeProductRepo())

	inactive := false
	created, err := svc.CreateProduct(context.Background(), models.ProductRequest{
		Nom:   "Citronnade",
		Prix:  decimal.RequireFromString("4.000"),
		Actif: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, created.Actif)
}

func TestListProducts_EmptyCatalogIsNotNil(t *testing.T) {
	svc := newTestProductService(newFakeProductRepo())

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	svc := newTestProductService(newFakeProductRepo())

	err := svc.DeleteProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
