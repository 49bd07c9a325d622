package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fizzlab/sodacraft/internal/filter"
	"github.com/fizzlab/sodacraft/internal/search"
	"github.com/fizzlab/sodacraft/internal/service"
	"github.com/fizzlab/sodacraft/internal/validation"
)

// SearchRequest is the POST /api/search body
type SearchRequest struct {
	Query   string       `json:"query" validate:"omitempty,max=200"`
	Filters filter.Query `json:"filters"`
	Sort    string       `json:"sort" validate:"omitempty,oneof=relevance name alpha alphabetical rating top best caffeine caffeinemg"`
	Offset  int          `json:"offset" validate:"min=0"`
	Limit   int          `json:"limit" validate:"min=0,max=100"`
}

// SearchHandler handles search HTTP requests
type SearchHandler struct {
	svc    *service.SearchService
	logger *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc *service.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		svc:    svc,
		logger: logger,
	}
}

// Search handles POST /api/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode search request", "error", err)
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

	if err := h.svc.ValidateFilters(req.Filters); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	resp, err := h.svc.Search(r.Context(), search.Params{
		Query:   req.Query,
		Filters: req.Filters,
		Sort:    search.NormalizeSortMode(req.Sort),
		Offset:  req.Offset,
		Limit:   req.Limit,
	})
	if err != nil {
		h.logger.Error("search failed", "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	writeData(w, http.StatusOK, resp)
}
