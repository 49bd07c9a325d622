package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fizzlab/sodacraft/internal/filter"
	"github.com/fizzlab/sodacraft/internal/models"
	"github.com/fizzlab/sodacraft/internal/repository"
	"github.com/fizzlab/sodacraft/internal/validation"
)

// ProductSearchRequest is the POST /api/product/search body
type ProductSearchRequest struct {
	Filters filter.Query `json:"filters"`
	Offset  int          `json:"offset" validate:"min=0"`
	Limit   int          `json:"limit" validate:"min=0,max=100"`
}

// ProductSearchResponse is one page of filtered products with facets over
// the full filtered set
type ProductSearchResponse struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Facets   []filter.Facet   `json:"facets"`
}

const defaultProductLimit = 20

// ProductHandler handles affiliate product browse requests
type ProductHandler struct {
	repo   repository.ProductRepository
	eval   *filter.Evaluator[models.Product]
	logger *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo repository.ProductRepository, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		repo:   repo,
		eval:   filter.NewEvaluator(filter.ProductSchema()),
		logger: logger,
	}
}

// Search handles POST /api/product/search
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req ProductSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode product search request", "error", err)
		writeError(w, http.StatusBadRequest, CodeValidation, "Invalid request body")
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		var reqErr *validation.RequestError
		if errors.As(err, &reqErr) {
			writeValidationError(w, reqErr)
			return
		}
		h.logger.Error("request validation errored", "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	if err := h.eval.Validate(req.Filters); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	products, err := h.repo.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to load products", "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	filtered := h.eval.Apply(products, req.Filters)

	limit := req.Limit
	if limit <= 0 {
		limit = defaultProductLimit
	}
	offset := req.Offset
	if offset > len(filtered) {
		offset = len(filtered)
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	writeData(w, http.StatusOK, ProductSearchResponse{
		Products: filtered[offset:end],
		Total:    len(filtered),
		Facets:   h.eval.Facets(filtered),
	})
}
