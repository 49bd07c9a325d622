package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fizzlab/sodacraft/internal/repository"
	"github.com/fizzlab/sodacraft/internal/stock"
	"github.com/go-chi/chi/v5"
)

// StockHandler handles ingredient stock-availability HTTP requests
type StockHandler struct {
	svc    *stock.Service
	logger *slog.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(svc *stock.Service, logger *slog.Logger) *StockHandler {
	return &StockHandler{
		svc:    svc,
		logger: logger,
	}
}

// Availability handles GET /api/stock/{ingredientId}
func (h *StockHandler) Availability(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "ingredientId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Warn("invalid ingredient ID", "ingredientId", raw)
		writeError(w, http.StatusBadRequest, CodeValidation, "Invalid ID supplied")
		return
	}

	report, err := h.svc.Availability(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			writeError(w, http.StatusNotFound, CodeNotFound, "Ingredient not found")
			return
		}
		h.logger.Error("stock lookup failed", "ingredientId", id, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	writeData(w, http.StatusOK, report)
}
