package repository

import (
	"context"

	"github.com/algonquin-pet-store/product-service/internal/models"
)

// catalog is the fixed product list served for the lifetime of the process.
// It is never mutated; GetAll hands out copies.
var catalog = []models.Product{
	{ID: 1, Name: "Dog Food", Price: 19.99},
	{ID: 2, Name: "Cat Food", Price: 34.99},
	{ID: 3, Name: "Bird Seeds", Price: 10.99},
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
}

// StaticProductRepository implements ProductRepository over the compiled-in catalog
type StaticProductRepository struct {
	products []models.Product
}

// NewStaticProductRepository creates a repository backed by the fixed catalog
func NewStaticProductRepository() *StaticProductRepository {
	return &StaticProductRepository{
		products: catalog,
	}
}

// GetAll returns all products in catalog order
func (r *StaticProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}
