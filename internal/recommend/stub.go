package recommend

import (
	"context"
	"math"
	"sort"

	"github.com/fizzlab/sodacraft/internal/models"
)

// DefaultLimit caps recommendations when the caller does not set one
const DefaultLimit = 5

// StubProvider is the stand-in Provider implementation. It ranks the static
// catalog by rating and style affinity so responses are deterministic and
// useful for UI work, but its ordering is placeholder behavior, not a
// product decision.
type StubProvider struct {
	recipes []models.Recipe
}

// NewStubProvider creates the stub over the loaded recipe catalog
func NewStubProvider(recipes []models.Recipe) *StubProvider {
	return &StubProvider{recipes: recipes}
}

// RecommendRecipes returns rating-ordered recipes honoring the profile's
// style and caffeine preferences
func (p *StubProvider) RecommendRecipes(ctx context.Context, profile Profile, limit int) ([]ScoredRecipe, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	candidates := make([]ScoredRecipe, 0, len(p.recipes))
	for _, r := range p.recipes {
		if profile.CaffeineFree && r.CaffeineMg > 0 {
			continue
		}
		score := r.Rating / 5.0
		if matchesStyle(profile.PreferredStyles, r.Style) {
			score = math.Min(1.0, score+0.2)
		}
		candidates = append(candidates, ScoredRecipe{Recipe: r, Confidence: score})
	}

	sortScored(candidates)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// SimilarRecipes returns same-style recipes closest in caffeine content
func (p *StubProvider) SimilarRecipes(ctx context.Context, recipeID int64, limit int) ([]ScoredRecipe, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var base *models.Recipe
	for i := range p.recipes {
		if p.recipes[i].ID == recipeID {
			base = &p.recipes[i]
			break
		}
	}
	if base == nil {
		return []ScoredRecipe{}, nil
	}

	candidates := make([]ScoredRecipe, 0, len(p.recipes))
	for _, r := range p.recipes {
		if r.ID == recipeID {
			continue
		}
		score := 0.0
		if r.Style == base.Style {
			score += 0.6
		}
		// Caffeine proximity contributes the rest, on a 200mg scale
		diff := math.Abs(r.CaffeineMg - base.CaffeineMg)
		score += 0.4 * math.Max(0, 1-diff/200)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, ScoredRecipe{Recipe: r, Confidence: score})
	}

	sortScored(candidates)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// TrendingStyles returns each style's rating-weighted share of the catalog
func (p *StubProvider) TrendingStyles(ctx context.Context) ([]StyleTrend, error) {
	weights := make(map[string]float64)
	total := 0.0
	for _, r := range p.recipes {
		weights[r.Style] += r.Rating
		total += r.Rating
	}

	trends := make([]StyleTrend, 0, len(weights))
	for style, w := range weights {
		share := 0.0
		if total > 0 {
			share = w / total
		}
		trends = append(trends, StyleTrend{Style: style, Share: share})
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Share != trends[j].Share {
			return trends[i].Share > trends[j].Share
		}
		return trends[i].Style < trends[j].Style
	})
	return trends, nil
}

func matchesStyle(preferred []string, style string) bool {
	for _, s := range preferred {
		if s == style {
			return true
		}
	}
	return false
}

func sortScored(s []ScoredRecipe) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Confidence != s[j].Confidence {
			return s[i].Confidence > s[j].Confidence
		}
		return s[i].Recipe.ID < s[j].Recipe.ID
	})
}
