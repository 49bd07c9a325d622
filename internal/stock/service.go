// Package stock answers ingredient stock-availability lookups. There is no
// live supplier feed; availability is synthesized deterministically from the
// loaded supplier data and a configured seed, standing in for an upstream
// integration that does not exist.
package stock

import (
	"context"
	"math/rand"

	"github.com/fizzlab/sodacraft/internal/models"
	"github.com/fizzlab/sodacraft/internal/repository"
)

// Availability is one supplier's stock position for an ingredient
type Availability struct {
	SupplierID   int64   `json:"supplierId"`
	SupplierName string  `json:"supplierName"`
	Country      string  `json:"country"`
	InStock      bool    `json:"inStock"`
	QuantityKg   float64 `json:"quantityKg"`
	LeadTimeDays int     `json:"leadTimeDays"`
}

// Report is the full availability answer for one ingredient
type Report struct {
	IngredientID   int64          `json:"ingredientId"`
	IngredientName string         `json:"ingredientName"`
	Suppliers      []Availability `json:"suppliers"`
}

// Service serves mock stock lookups over the ingredient/supplier catalog
type Service struct {
	repo repository.IngredientRepository
	seed int64
}

// NewService creates a stock service. The seed fixes the synthesized
// availability so repeated lookups agree.
func NewService(repo repository.IngredientRepository, seed int64) *Service {
	return &Service{repo: repo, seed: seed}
}

// Availability returns per-supplier stock for an ingredient. Unknown
// ingredients return repository.ErrIngredientNotFound.
func (s *Service) Availability(ctx context.Context, ingredientID int64) (*Report, error) {
	ing, err := s.repo.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		IngredientID:   ing.ID,
		IngredientName: ing.Name,
		Suppliers:      make([]Availability, 0, len(ing.SupplierIDs)),
	}

	for _, sid := range ing.SupplierIDs {
		sup, err := s.repo.GetSupplierByID(ctx, sid)
		if err != nil {
			// Data files may reference a supplier the supplier file dropped;
			// skip rather than fail the whole lookup
			continue
		}
		report.Suppliers = append(report.Suppliers, s.synthesize(ing, sup))
	}

	return report, nil
}

// synthesize derives a stable pseudo-random stock position for one
// (ingredient, supplier) pair
func (s *Service) synthesize(ing *models.Ingredient, sup *models.Supplier) Availability {
	rng := rand.New(rand.NewSource(s.seed ^ (ing.ID * 31) ^ (sup.ID * 131071)))

	inStock := rng.Float64() > 0.2
	qty := 0.0
	if inStock {
		qty = sup.MinOrderKg * (1 + rng.Float64()*9)
	}

	return Availability{
		SupplierID:   sup.ID,
		SupplierName: sup.Name,
		Country:      sup.Country,
		InStock:      inStock,
		QuantityKg:   qty,
		LeadTimeDays: sup.LeadTimeDays,
	}
}
