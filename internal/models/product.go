package models

// Product represents a retail product eligible for affiliate linking
type Product struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	ASIN       string   `json:"asin"`
	PriceCents int64    `json:"priceCents"`
	Currency   string   `json:"currency"`
	Category   string   `json:"category"`
	InStock    bool     `json:"inStock"`
	Tags       []string `json:"tags"`
}
