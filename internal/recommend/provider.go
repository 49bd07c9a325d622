// Package recommend defines the personalization provider boundary. The
// "intelligent" recommendation surface is an external service that does not
// exist yet; this package specifies its contract and supplies the stub used
// at the composition root and in tests.
package recommend

import (
	"context"

	"github.com/fizzlab/sodacraft/internal/models"
)

// Profile captures what is known about a visitor for personalization
type Profile struct {
	VisitorID       string   `json:"visitorId"`
	PreferredStyles []string `json:"preferredStyles,omitempty"`
	CaffeineFree    bool     `json:"caffeineFree,omitempty"`
}

// ScoredRecipe is a recommendation with the provider's confidence in it
type ScoredRecipe struct {
	Recipe     models.Recipe `json:"recipe"`
	Confidence float64       `json:"confidence"`
}

// StyleTrend is one recipe style with its current popularity share
type StyleTrend struct {
	Style string  `json:"style"`
	Share float64 `json:"share"`
}

// Provider is the personalization service boundary.
//
// Contract:
//   - RecommendRecipes returns up to limit recipes for the profile, best
//     first, each with a confidence in (0,1]. An empty profile is valid and
//     yields unpersonalized picks.
//   - SimilarRecipes returns up to limit recipes similar to recipeID, never
//     including recipeID itself. Unknown IDs yield an empty slice, not an
//     error.
//   - TrendingStyles returns styles ordered by descending share; shares sum
//     to at most 1.
//
// The real ranking behavior is unspecified; implementations may only be
// judged against this contract, not against any particular ordering.
type Provider interface {
	RecommendRecipes(ctx context.Context, profile Profile, limit int) ([]ScoredRecipe, error)
	SimilarRecipes(ctx context.Context, recipeID int64, limit int) ([]ScoredRecipe, error)
	TrendingStyles(ctx context.Context) ([]StyleTrend, error)
}
