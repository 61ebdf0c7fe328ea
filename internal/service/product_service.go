package service

import (
	"context"
	"fmt"

	"github.com/algonquin-pet-store/product-service/internal/models"
	"github.com/algonquin-pet-store/product-service/internal/repository"
)

// ProductService provides read-only access to the product catalog
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all available products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
