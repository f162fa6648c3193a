package services

import (
	"context"

	"folio/internal/models"
	"folio/internal/store"
)

type productService struct {
	repo *store.Repository
}

// NewProductService creates a new ProductServicer.
func NewProductService(repo *store.Repository) ProductServicer {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListProducts(ctx)
}
