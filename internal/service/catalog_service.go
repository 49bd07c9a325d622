package service

import (
	"context"

	"github.com/fizzlab/sodacraft/internal/models"
	"github.com/fizzlab/sodacraft/internal/repository"
)

// CatalogService handles business logic for the recipe catalog
type CatalogService struct {
	repo repository.RecipeRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.RecipeRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListRecipes returns all catalog recipes
func (s *CatalogService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return s.repo.GetAll(ctx)
}

// GetRecipe returns a recipe by ID
func (s *CatalogService) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	return s.repo.GetByID(ctx, id)
}
