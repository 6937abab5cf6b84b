package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cafe-nour/cafe-service/internal/api"
	"github.com/cafe-nour/cafe-service/internal/models"
	"github.com/cafe-nour/cafe-service/internal/service"
)

// ProductHandler handles product catalog requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /produits
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, products)
}

// Create handles POST /produits
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if !req.Prix.IsPositive() {
		api.BadRequest(w, "Prix invalide")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), req)
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondCreated(w, product)
}

// Update handles PUT /produits/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		api.BadRequest(w, "Identifiant de produit invalide")
		return
	}

	var req models.ProductUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.Prix != nil && !req.Prix.IsPositive() {
		api.BadRequest(w, "Prix invalide")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, req)
	if err != nil {
		api.FromError(w, err)
		return
	}

	respondJSON(w, product)
}

// Delete handles DELETE /produits/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		api.BadRequest(w, "Identifiant de produit invalide")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		api.FromError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
