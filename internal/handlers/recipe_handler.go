package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fizzlab/sodacraft/internal/recommend"
	"github.com/fizzlab/sodacraft/internal/repository"
	"github.com/fizzlab/sodacraft/internal/service"
	"github.com/go-chi/chi/v5"
)

// RecipeHandler handles recipe catalog HTTP requests
type RecipeHandler struct {
	catalog  *service.CatalogService
	provider recommend.Provider
	logger   *slog.Logger
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(catalog *service.CatalogService, provider recommend.Provider, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		catalog:  catalog,
		provider: provider,
		logger:   logger,
	}
}

// ListRecipes handles GET /api/recipe
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.catalog.ListRecipes(r.Context())
	if err != nil {
		h.logger.Error("failed to list recipes", "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	writeData(w, http.StatusOK, recipes)
}

// GetRecipe handles GET /api/recipe/{recipeId}
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recipeID(w, r)
	if !ok {
		return
	}

	recipe, err := h.catalog.GetRecipe(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			h.logger.Info("recipe not found", "recipeId", id)
			writeError(w, http.StatusNotFound, CodeNotFound, "Recipe not found")
			return
		}
		h.logger.Error("failed to get recipe", "recipeId", id, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	writeData(w, http.StatusOK, recipe)
}

// SimilarRecipes handles GET /api/recipe/{recipeId}/similar
func (h *RecipeHandler) SimilarRecipes(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recipeID(w, r)
	if !ok {
		return
	}

	// The provider returns an empty set for unknown IDs; surface that as 404
	// so the endpoint agrees with GET /api/recipe/{recipeId}
	if _, err := h.catalog.GetRecipe(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			writeError(w, http.StatusNotFound, CodeNotFound, "Recipe not found")
			return
		}
		h.logger.Error("failed to get recipe", "recipeId", id, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	limit := queryInt(r, "limit", recommend.DefaultLimit)
	similar, err := h.provider.SimilarRecipes(r.Context(), id, limit)
	if err != nil {
		h.logger.Error("similar lookup failed", "recipeId", id, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	writeData(w, http.StatusOK, similar)
}

func (h *RecipeHandler) recipeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "recipeId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Warn("invalid recipe ID", "recipeId", raw)
		writeError(w, http.StatusBadRequest, CodeValidation, "Invalid ID supplied")
		return 0, false
	}
	return id, true
}

// queryInt reads an integer query parameter with a fallback
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
