// Package suggest provides autocomplete suggestions over recipe names,
// ingredient names, and tags.
package suggest

import (
	"sort"
	"strings"

	"github.com/fizzlab/sodacraft/internal/matcher"
	"github.com/fizzlab/sodacraft/internal/models"
)

// DefaultLimit caps suggestions when the request does not set one
const DefaultLimit = 8

// Kind identifies where a suggestion came from
type Kind string

const (
	KindRecipe     Kind = "recipe"
	KindIngredient Kind = "ingredient"
	KindTag        Kind = "tag"
)

// Suggestion is one autocomplete candidate
type Suggestion struct {
	Text  string `json:"text"`
	Kind  Kind   `json:"kind"`
	Score int    `json:"score"`
}

type entry struct {
	text string
	norm string
	kind Kind
}

// Suggester serves prefix and fuzzy completions over a fixed vocabulary
// built at startup from the loaded catalog
type Suggester struct {
	entries   []entry
	threshold float64
}

// NewSuggester builds the suggestion vocabulary from recipes and
// ingredients. Duplicate terms keep their first-seen kind.
func NewSuggester(recipes []models.Recipe, ingredients []models.Ingredient) *Suggester {
	s := &Suggester{threshold: matcher.DefaultSimilarityThreshold}
	seen := make(map[string]bool)

	add := func(text string, kind Kind) {
		norm := matcher.Normalize(text)
		if norm == "" || seen[norm] {
			return
		}
		seen[norm] = true
		s.entries = append(s.entries, entry{text: text, norm: norm, kind: kind})
	}

	for _, r := range recipes {
		add(r.Name, KindRecipe)
	}
	for _, ing := range ingredients {
		add(ing.Name, KindIngredient)
	}
	for _, r := range recipes {
		for _, tag := range r.Tags {
			add(tag, KindTag)
		}
	}

	return s
}

// Suggest returns up to limit completions for the query: prefix matches
// ranked first, fuzzy matches above the similarity threshold after them.
func (s *Suggester) Suggest(query string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := matcher.Normalize(query)
	if q == "" {
		return []Suggestion{}
	}

	out := make([]Suggestion, 0, limit)
	for _, e := range s.entries {
		prefix := strings.HasPrefix(e.norm, q) || wordPrefix(e.norm, q)
		if !prefix && !matcher.Fuzzy(q, e.norm, s.threshold) {
			continue
		}
		out = append(out, Suggestion{
			Text:  e.text,
			Kind:  e.kind,
			Score: matcher.Score(q, e.text),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Text < out[j].Text
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func wordPrefix(text, q string) bool {
	for _, w := range strings.Fields(text) {
		if strings.HasPrefix(w, q) {
			return true
		}
	}
	return false
}
