package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fizzlab/sodacraft/internal/affiliate"
	"github.com/fizzlab/sodacraft/internal/repository"
	"github.com/fizzlab/sodacraft/internal/validation"
	"github.com/go-chi/chi/v5"
)

// ClickRequest is the POST /api/affiliate/click body
type ClickRequest struct {
	VisitorID string `json:"visitorId" validate:"required,max=64"`
	ProductID int64  `json:"productId" validate:"required,min=1"`
}

// LinkResponse is the affiliate link payload
type LinkResponse struct {
	ProductID int64  `json:"productId"`
	URL       string `json:"url"`
}

// AffiliateHandler handles affiliate tracking HTTP requests
type AffiliateHandler struct {
	tracker  *affiliate.Tracker
	links    *affiliate.LinkBuilder
	offers   affiliate.ProductAPI
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewAffiliateHandler creates a new affiliate handler
func NewAffiliateHandler(
	tracker *affiliate.Tracker,
	links *affiliate.LinkBuilder,
	offers affiliate.ProductAPI,
	products repository.ProductRepository,
	logger *slog.Logger,
) *AffiliateHandler {
	return &AffiliateHandler{
		tracker:  tracker,
		links:    links,
		offers:   offers,
		products: products,
		logger:   logger,
	}
}

// TrackClick handles POST /api/affiliate/click
func (h *AffiliateHandler) TrackClick(w http.ResponseWriter, r *http.Request) {
	var req ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode click request", "error", err)
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

	if _, err := h.products.GetByID(r.Context(), req.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, CodeNotFound, "Product not found")
			return
		}
		h.logger.Error("product lookup failed", "productId", req.ProductID, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	event := h.tracker.TrackClick(req.VisitorID, req.ProductID)
	h.logger.Info("affiliate click tracked",
		"event_id", event.ID,
		"product_id", event.ProductID,
		"unique", event.Unique,
	)

	writeData(w, http.StatusOK, event)
}

// Link handles GET /api/affiliate/link/{productId}
func (h *AffiliateHandler) Link(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, "Invalid ID supplied")
		return
	}

	product, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, CodeNotFound, "Product not found")
			return
		}
		h.logger.Error("product lookup failed", "productId", id, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	link, err := h.links.BuildLink(*product)
	if err != nil {
		h.logger.Error("failed to build affiliate link", "productId", id, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	writeData(w, http.StatusOK, LinkResponse{ProductID: id, URL: link})
}

// Offer handles GET /api/affiliate/offer/{productId}
func (h *AffiliateHandler) Offer(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidation, "Invalid ID supplied")
		return
	}

	product, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, CodeNotFound, "Product not found")
			return
		}
		h.logger.Error("product lookup failed", "productId", id, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	offer, err := h.offers.GetOffer(r.Context(), product.ASIN)
	if err != nil {
		if errors.Is(err, affiliate.ErrOfferNotFound) {
			writeError(w, http.StatusNotFound, CodeNotFound, "No offer for product")
			return
		}
		h.logger.Error("offer lookup failed", "productId", id, "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error")
		return
	}

	writeData(w, http.StatusOK, offer)
}

// Stats handles GET /api/affiliate/stats (API-key protected)
func (h *AffiliateHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.tracker.AllStats())
}
