package repository

import (
	"context"
	"errors"

	"github.com/fizzlab/sodacraft/internal/models"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrSupplierNotFound   = errors.New("supplier not found")
)

// IngredientRepository defines the interface for ingredient and supplier
// data access
type IngredientRepository interface {
	GetAll(ctx context.Context) ([]models.Ingredient, error)
	GetByID(ctx context.Context, id int64) (*models.Ingredient, error)
	GetSuppliers(ctx context.Context) ([]models.Supplier, error)
	GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error)
}

// InMemoryIngredientRepository implements IngredientRepository over the
// embedded catalog data
type InMemoryIngredientRepository struct {
	ingredients []models.Ingredient
	suppliers   []models.Supplier
	ingByID     map[int64]int
	supByID     map[int64]int
}

// NewInMemoryIngredientRepository creates an ingredient repository from the
// embedded data files
func NewInMemoryIngredientRepository() (*InMemoryIngredientRepository, error) {
	var ingredients []models.Ingredient
	if err := loadJSON("ingredients.json", &ingredients); err != nil {
		return nil, err
	}
	var suppliers []models.Supplier
	if err := loadJSON("suppliers.json", &suppliers); err != nil {
		return nil, err
	}

	ingByID := make(map[int64]int, len(ingredients))
	for i, ing := range ingredients {
		ingByID[ing.ID] = i
	}
	supByID := make(map[int64]int, len(suppliers))
	for i, s := range suppliers {
		supByID[s.ID] = i
	}

	return &InMemoryIngredientRepository{
		ingredients: ingredients,
		suppliers:   suppliers,
		ingByID:     ingByID,
		supByID:     supByID,
	}, nil
}

// GetAll returns all ingredients in load order
func (r *InMemoryIngredientRepository) GetAll(ctx context.Context) ([]models.Ingredient, error) {
	out := make([]models.Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out, nil
}

// GetByID returns an ingredient by its ID
func (r *InMemoryIngredientRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	i, exists := r.ingByID[id]
	if !exists {
		return nil, ErrIngredientNotFound
	}
	ing := r.ingredients[i]
	return &ing, nil
}

// GetSuppliers returns all suppliers in load order
func (r *InMemoryIngredientRepository) GetSuppliers(ctx context.Context) ([]models.Supplier, error) {
	out := make([]models.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	return out, nil
}

// GetSupplierByID returns a supplier by its ID
func (r *InMemoryIngredientRepository) GetSupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	i, exists := r.supByID[id]
	if !exists {
		return nil, ErrSupplierNotFound
	}
	s := r.suppliers[i]
	return &s, nil
}
