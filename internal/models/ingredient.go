package models

// Ingredient represents a raw ingredient used by catalog recipes
type Ingredient struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	FlavorNotes []string `json:"flavorNotes"`
	Allergens   []string `json:"allergens"`
	PricePerKg  float64  `json:"pricePerKg"`
	SupplierIDs []int64  `json:"supplierIds"`
}

// Supplier represents an ingredient supplier
type Supplier struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	LeadTimeDays int     `json:"leadTimeDays"`
	MinOrderKg   float64 `json:"minOrderKg"`
	Rating       float64 `json:"rating"`
}
