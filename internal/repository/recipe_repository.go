package repository

import (
	"context"
	"errors"

	"github.com/fizzlab/sodacraft/internal/models"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
)

// RecipeRepository defines the interface for recipe data access
type RecipeRepository interface {
	GetAll(ctx context.Context) ([]models.Recipe, error)
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
}

// InMemoryRecipeRepository implements RecipeRepository over the embedded
// catalog data. Records keep their file order.
type InMemoryRecipeRepository struct {
	recipes []models.Recipe
	byID    map[int64]int
}

// NewInMemoryRecipeRepository creates a recipe repository from the embedded
// data files
func NewInMemoryRecipeRepository() (*InMemoryRecipeRepository, error) {
	var recipes []models.Recipe
	if err := loadJSON("recipes.json", &recipes); err != nil {
		return nil, err
	}

	byID := make(map[int64]int, len(recipes))
	for i, r := range recipes {
		byID[r.ID] = i
	}

	return &InMemoryRecipeRepository{
		recipes: recipes,
		byID:    byID,
	}, nil
}

// GetAll returns all recipes in load order
func (r *InMemoryRecipeRepository) GetAll(ctx context.Context) ([]models.Recipe, error) {
	out := make([]models.Recipe, len(r.recipes))
	copy(out, r.recipes)
	return out, nil
}

// GetByID returns a recipe by its ID
func (r *InMemoryRecipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	i, exists := r.byID[id]
	if !exists {
		return nil, ErrRecipeNotFound
	}
	recipe := r.recipes[i]
	return &recipe, nil
}
