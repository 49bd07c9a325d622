package search

import "strings"

// SortMode selects the result ordering
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortName      SortMode = "name"
	SortRating    SortMode = "rating"
	SortCaffeine  SortMode = "caffeine"
)

// NormalizeSortMode maps raw user input onto a supported sort mode.
// Unknown values fall back to relevance.
func NormalizeSortMode(raw string) SortMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "name", "alpha", "alphabetical":
		return SortName
	case "rating", "top", "best":
		return SortRating
	case "caffeine", "caffeinemg":
		return SortCaffeine
	default:
		return SortRelevance
	}
}
