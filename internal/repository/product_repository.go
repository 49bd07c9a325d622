package repository

import (
	"context"
	"errors"

	"github.com/fizzlab/sodacraft/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for affiliate product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository over the embedded
// catalog data
type InMemoryProductRepository struct {
	products []models.Product
	byID     map[int64]int
}

// NewInMemoryProductRepository creates a product repository from the embedded
// data files
func NewInMemoryProductRepository() (*InMemoryProductRepository, error) {
	var products []models.Product
	if err := loadJSON("products.json", &products); err != nil {
		return nil, err
	}

	byID := make(map[int64]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &InMemoryProductRepository{
		products: products,
		byID:     byID,
	}, nil
}

// GetAll returns all products in load order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	i, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}
