package filter

import (
	"strconv"

	"github.com/fizzlab/sodacraft/internal/models"
)

// Kind is the value type a field accessor exposes to the evaluator
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindList
)

// Accessor extracts one typed field from a record. Exactly one of Str, Num,
// or List is set, matching Kind. Multiselect fields contribute facets.
type Accessor[T any] struct {
	Kind        Kind
	Multiselect bool
	Str         func(T) string
	Num         func(T) float64
	List        func(T) []string
}

// Schema maps filterable field names to their typed accessors
type Schema[T any] map[string]Accessor[T]

// RecipeSchema returns the accessor table for recipe records
func RecipeSchema() Schema[models.Recipe] {
	return Schema[models.Recipe]{
		"name": {
			Kind: KindString,
			Str:  func(r models.Recipe) string { return r.Name },
		},
		"slug": {
			Kind: KindString,
			Str:  func(r models.Recipe) string { return r.Slug },
		},
		"style": {
			Kind:        KindString,
			Multiselect: true,
			Str:         func(r models.Recipe) string { return r.Style },
		},
		"description": {
			Kind: KindString,
			Str:  func(r models.Recipe) string { return r.Description },
		},
		"ingredients": {
			Kind: KindList,
			List: func(r models.Recipe) []string { return r.Ingredients },
		},
		"tags": {
			Kind:        KindList,
			Multiselect: true,
			List:        func(r models.Recipe) []string { return r.Tags },
		},
		"caffeineMg": {
			Kind: KindNumber,
			Num:  func(r models.Recipe) float64 { return r.CaffeineMg },
		},
		"sugarG": {
			Kind: KindNumber,
			Num:  func(r models.Recipe) float64 { return r.SugarG },
		},
		"servingMl": {
			Kind: KindNumber,
			Num:  func(r models.Recipe) float64 { return r.ServingML },
		},
		"difficulty": {
			Kind:        KindNumber,
			Multiselect: true,
			Num:         func(r models.Recipe) float64 { return float64(r.Difficulty) },
		},
		"prepMinutes": {
			Kind: KindNumber,
			Num:  func(r models.Recipe) float64 { return float64(r.PrepMinutes) },
		},
		"rating": {
			Kind: KindNumber,
			Num:  func(r models.Recipe) float64 { return r.Rating },
		},
		"featured": {
			Kind: KindString,
			Str:  func(r models.Recipe) string { return strconv.FormatBool(r.Featured) },
		},
	}
}

// ProductSchema returns the accessor table for affiliate product records
func ProductSchema() Schema[models.Product] {
	return Schema[models.Product]{
		"name": {
			Kind: KindString,
			Str:  func(p models.Product) string { return p.Name },
		},
		"brand": {
			Kind:        KindString,
			Multiselect: true,
			Str:         func(p models.Product) string { return p.Brand },
		},
		"category": {
			Kind:        KindString,
			Multiselect: true,
			Str:         func(p models.Product) string { return p.Category },
		},
		"tags": {
			Kind:        KindList,
			Multiselect: true,
			List:        func(p models.Product) []string { return p.Tags },
		},
		"priceCents": {
			Kind: KindNumber,
			Num:  func(p models.Product) float64 { return float64(p.PriceCents) },
		},
		"inStock": {
			Kind: KindString,
			Str:  func(p models.Product) string { return strconv.FormatBool(p.InStock) },
		},
	}
}
