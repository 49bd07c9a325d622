package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/fizzlab/sodacraft/internal/recommend"
)

// RecommendHandler handles personalization HTTP requests
type RecommendHandler struct {
	provider recommend.Provider
	logger   *slog.Logger
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(provider recommend.Provider, logger *slog.Logger) *RecommendHandler {
	return &RecommendHandler{
		provider: provider,
		logger:   logger,
	}
}

// Recommend handles GET /api/recommend?visitor=&styles=&caffeineFree=&limit=
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	profile := recommend.Profile{
		VisitorID:    q.Get("visitor"),
		CaffeineFree: q.Get("caffeineFree") == "true",
	}
	if styles := q.Get("styles"); styles != "" {
		profile.PreferredStyles = strings.Split(styles, ",")
	}

	limit := queryInt(r, "limit", recommend.DefaultLimit)
	if limit < 0 || limit > 50 {
		writeError(w, http.StatusBadRequest, CodeValidation, "limit must be between 0 and 50")
		return
	}

	recs, err := h.provider.RecommendRecipes(r.Context(), profile, limit)
	if err != nil {
		h.logger.Error("recommendation failed", "visitor", profile.VisitorID, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	writeData(w, http.StatusOK, recs)
}

// Trending handles GET /api/trending
func (h *RecommendHandler) Trending(w http.ResponseWriter, r *http.Request) {
	trends, err := h.provider.TrendingStyles(r.Context())
	if err != nil {
		h.logger.Error("trending lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	writeData(w, http.StatusOK, trends)
}
