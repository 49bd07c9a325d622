package affiliate

import (
	"context"
	"errors"
)

var (
	ErrOfferNotFound = errors.New("offer not found")
)

// Offer is a retailer's current listing for an ASIN
type Offer struct {
	ASIN       string `json:"asin"`
	PriceCents int64  `json:"priceCents"`
	Currency   string `json:"currency"`
	Available  bool   `json:"available"`
}

// ProductAPI looks up live offer data for an ASIN.
//
// Contract: GetOffer returns the current offer or ErrOfferNotFound for an
// unknown ASIN. No real upstream integration exists; the production wiring
// uses StubProductAPI, which serves fixed offers. A real implementation
// would slot in behind this interface without touching callers.
type ProductAPI interface {
	GetOffer(ctx context.Context, asin string) (*Offer, error)
}

// StubProductAPI serves hard-coded offers in place of a real retailer API
type StubProductAPI struct {
	offers map[string]Offer
}

// NewStubProductAPI creates the stub with its fixed offer table
func NewStubProductAPI() *StubProductAPI {
	offers := map[string]Offer{
		"B08FZK31XQ": {ASIN: "B08FZK31XQ", PriceCents: 12999, Currency: "USD", Available: true},
		"B07D4N2PLM": {ASIN: "B07D4N2PLM", PriceCents: 2450, Currency: "USD", Available: true},
		"B01M8LF1T3": {ASIN: "B01M8LF1T3", PriceCents: 3899, Currency: "USD", Available: true},
		"B09XJ8WQ2R": {ASIN: "B09XJ8WQ2R", PriceCents: 3299, Currency: "USD", Available: false},
		"B06WGRPV7H": {ASIN: "B06WGRPV7H", PriceCents: 1599, Currency: "USD", Available: true},
		"B0B2LKJ9TN": {ASIN: "B0B2LKJ9TN", PriceCents: 8950, Currency: "USD", Available: true},
		"B08YHTD4KC": {ASIN: "B08YHTD4KC", PriceCents: 1875, Currency: "USD", Available: true},
		"B07NQCJ5ZD": {ASIN: "B07NQCJ5ZD", PriceCents: 2199, Currency: "USD", Available: true},
	}
	return &StubProductAPI{offers: offers}
}

// GetOffer returns the fixed offer for an ASIN
func (s *StubProductAPI) GetOffer(ctx context.Context, asin string) (*Offer, error) {
	offer, ok := s.offers[asin]
	if !ok {
		return nil, ErrOfferNotFound
	}
	return &offer, nil
}
