package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fizzlab/sodacraft/internal/suggest"
)

// SuggestHandler handles autocomplete HTTP requests
type SuggestHandler struct {
	suggester *suggest.Suggester
	logger    *slog.Logger
}

// NewSuggestHandler creates a new autocomplete handler
func NewSuggestHandler(suggester *suggest.Suggester, logger *slog.Logger) *SuggestHandler {
	return &SuggestHandler{
		suggester: suggester,
		logger:    logger,
	}
}

// Suggest handles GET /api/suggest?q=&limit=
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, CodeValidation, "query parameter q is required")
		return
	}

	limit := queryInt(r, "limit", suggest.DefaultLimit)
	if limit < 0 || limit > 50 {
		writeError(w, http.StatusBadRequest, CodeValidation, "limit must be between 0 and 50")
		return
	}

	suggestions := h.suggester.Suggest(q, limit)
	writeData(w, http.StatusOK, suggestions)
}
