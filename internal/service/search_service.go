package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fizzlab/sodacraft/internal/cache"
	"github.com/fizzlab/sodacraft/internal/filter"
	"github.com/fizzlab/sodacraft/internal/repository"
	"github.com/fizzlab/sodacraft/internal/search"
)

// SearchService evaluates search requests over the recipe catalog, with a
// short-lived result cache in front of repeated identical requests
type SearchService struct {
	repo     repository.RecipeRepository
	searcher *search.Searcher
	results  *cache.TTLCache
	log      *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(repo repository.RecipeRepository, searcher *search.Searcher, results *cache.TTLCache, log *slog.Logger) *SearchService {
	return &SearchService{
		repo:     repo,
		searcher: searcher,
		results:  results,
		log:      log,
	}
}

// ValidateFilters checks a request's filter groups against the recipe schema
func (s *SearchService) ValidateFilters(q filter.Query) error {
	return s.searcher.ValidateFilters(q)
}

// Search evaluates a search request, serving repeated requests from cache
// within the cache TTL
func (s *SearchService) Search(ctx context.Context, p search.Params) (search.Response, error) {
	key, keyOK := cacheKey(p)
	if keyOK {
		if v, ok := s.results.Get(key); ok {
			if resp, ok := v.(search.Response); ok {
				s.log.Debug("search cache hit", "key_len", len(key))
				return resp, nil
			}
		}
	}

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return search.Response{}, fmt.Errorf("failed to load recipes: %w", err)
	}

	resp := s.searcher.Search(records, p)

	if keyOK {
		s.results.Set(key, resp)
	}
	return resp, nil
}

// cacheKey serializes the params into a stable lookup key. Params that fail
// to serialize just bypass the cache.
func cacheKey(p search.Params) (string, bool) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", false
	}
	return string(b), true
}
