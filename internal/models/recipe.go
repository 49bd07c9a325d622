package models

// Recipe represents a soda or energy-drink recipe in the catalog
type Recipe struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Style       string   `json:"style"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	CaffeineMg  float64  `json:"caffeineMg"`
	SugarG      float64  `json:"sugarG"`
	ServingML   float64  `json:"servingMl"`
	Difficulty  int      `json:"difficulty"`
	PrepMinutes int      `json:"prepMinutes"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
	Featured    bool     `json:"featured"`
}

// Recipe styles used across the catalog
const (
	StyleEnergy = "energy"
	StyleCola   = "cola"
	StyleCitrus = "citrus"
	StyleBerry  = "berry"
	StyleHerbal = "herbal"
)
