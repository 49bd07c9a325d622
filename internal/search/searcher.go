// Package search scores and ranks catalog recipes against free-text queries,
// composing with the filter engine for multi-criteria narrowing.
package search

import (
	"log/slog"
	"sort"

	"github.com/fizzlab/sodacraft/internal/filter"
	"github.com/fizzlab/sodacraft/internal/matcher"
	"github.com/fizzlab/sodacraft/internal/models"
)

const (
	// DefaultLimit caps a result page when the request does not set one
	DefaultLimit = 20

	// minScore drops records whose best weighted field match is still noise
	minScore = 40
)

// fieldWeight scales a field's 0-100 match score by how much a hit there
// should count. Name hits dominate; description hits barely register.
type fieldWeight struct {
	weight  float64
	extract func(models.Recipe) []string
}

var scoredFields = []fieldWeight{
	{1.0, func(r models.Recipe) []string { return []string{r.Name} }},
	{0.8, func(r models.Recipe) []string { return r.Tags }},
	{0.7, func(r models.Recipe) []string { return []string{r.Style} }},
	{0.5, func(r models.Recipe) []string { return r.Ingredients }},
	{0.4, func(r models.Recipe) []string { return []string{r.Description} }},
}

// Result is one scored search hit
type Result struct {
	Recipe models.Recipe `json:"recipe"`
	Score  int           `json:"score"`
}

// Params are the search inputs: free-text query, filter groups, sort mode,
// and pagination window
type Params struct {
	Query   string
	Filters filter.Query
	Sort    SortMode
	Offset  int
	Limit   int
}

// Response is a full search evaluation: one page of results, the total
// result count before pagination, and facets over the filtered set
type Response struct {
	Results []Result       `json:"results"`
	Total   int            `json:"total"`
	Facets  []filter.Facet `json:"facets"`
}

// Searcher evaluates search requests over in-memory recipe records
type Searcher struct {
	eval   *filter.Evaluator[models.Recipe]
	logger *slog.Logger
}

// NewSearcher creates a searcher over the recipe field schema
func NewSearcher(logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Searcher{
		eval:   filter.NewEvaluator(filter.RecipeSchema()),
		logger: logger,
	}
}

// ValidateFilters checks the filter portion of a request ahead of evaluation
func (s *Searcher) ValidateFilters(q filter.Query) error {
	return s.eval.Validate(q)
}

// Search filters, scores, sorts, and paginates records. The full sorted list
// is deterministic for a given (records, params), so sequential pages
// concatenate back into it.
func (s *Searcher) Search(records []models.Recipe, p Params) Response {
	filtered := s.eval.Apply(records, p.Filters)

	var results []Result
	if p.Query == "" {
		results = make([]Result, 0, len(filtered))
		for _, r := range filtered {
			results = append(results, Result{Recipe: r})
		}
	} else {
		results = scoreRecords(filtered, p.Query)
	}

	sortResults(results, p.Sort)

	total := len(results)
	page := paginate(results, p.Offset, p.Limit)

	s.logger.Debug("search evaluated",
		"query", p.Query,
		"filtered", len(filtered),
		"total", total,
		"returned", len(page),
	)

	return Response{
		Results: page,
		Total:   total,
		Facets:  s.eval.Facets(filtered),
	}
}

// scoreRecords rates every record against the query and keeps those above
// the noise floor
func scoreRecords(records []models.Recipe, query string) []Result {
	results := make([]Result, 0, len(records))
	for _, r := range records {
		score := scoreRecipe(r, query)
		if score >= minScore {
			results = append(results, Result{Recipe: r, Score: score})
		}
	}
	return results
}

// scoreRecipe takes the best weighted field match as the record's relevance
func scoreRecipe(r models.Recipe, query string) int {
	best := 0
	for _, fw := range scoredFields {
		for _, text := range fw.extract(r) {
			if s := int(fw.weight * float64(matcher.Score(query, text))); s > best {
				best = s
			}
		}
	}
	return best
}

// paginate slices a prefix-stable window out of the sorted results
func paginate(results []Result, offset, limit int) []Result {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(results) {
		return []Result{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}

// sortResults orders results by the requested mode. All modes break ties by
// record ID so pagination stays stable.
func sortResults(results []Result, mode SortMode) {
	less := func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Recipe.ID < results[j].Recipe.ID
	}

	switch mode {
	case SortName:
		less = func(i, j int) bool {
			if results[i].Recipe.Name != results[j].Recipe.Name {
				return results[i].Recipe.Name < results[j].Recipe.Name
			}
			return results[i].Recipe.ID < results[j].Recipe.ID
		}
	case SortRating:
		less = func(i, j int) bool {
			if results[i].Recipe.Rating != results[j].Recipe.Rating {
				return results[i].Recipe.Rating > results[j].Recipe.Rating
			}
			return results[i].Recipe.ID < results[j].Recipe.ID
		}
	case SortCaffeine:
		less = func(i, j int) bool {
			if results[i].Recipe.CaffeineMg != results[j].Recipe.CaffeineMg {
				return results[i].Recipe.CaffeineMg < results[j].Recipe.CaffeineMg
			}
			return results[i].Recipe.ID < results[j].Recipe.ID
		}
	}

	sort.SliceStable(results, less)
}
