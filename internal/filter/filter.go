// Package filter implements the multi-criteria filter evaluation engine used
// by the catalog search endpoints. A query is a set of expression groups;
// expressions within a group combine under the group's AND/OR mode and groups
// combine under the query's top-level AND/OR mode. Evaluation is a pure
// function of (records, query) and preserves input order.
package filter

import "strings"

// Operator identifies a comparison applied by a single filter expression
type Operator string

const (
	OpEq       Operator = "eq"
	OpNeq      Operator = "neq"
	OpContains Operator = "contains"
	OpBetween  Operator = "between"
	OpIn       Operator = "in"
	OpHas      Operator = "has"
	OpRegex    Operator = "regex"
	OpFuzzy    Operator = "fuzzy"
	OpGt       Operator = "gt"
	OpGte      Operator = "gte"
	OpLt       Operator = "lt"
	OpLte      Operator = "lte"
)

// Mode selects how expressions or groups combine
type Mode string

const (
	ModeAnd Mode = "and"
	ModeOr  Mode = "or"
)

// normalizeMode maps the empty string and mixed case onto a valid mode.
// Anything unrecognized falls back to AND, the stricter combination.
func normalizeMode(m Mode) Mode {
	switch Mode(strings.ToLower(string(m))) {
	case ModeOr:
		return ModeOr
	default:
		return ModeAnd
	}
}

// Expression is a single (field, operator, value) filter triple.
// Value arrives as decoded JSON: a string, a number, or a list.
type Expression struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
}

// Group is a set of expressions combined under one mode
type Group struct {
	Mode        Mode         `json:"mode,omitempty"`
	Expressions []Expression `json:"expressions"`
}

// Query is the full filter input: groups combined under a top-level mode.
// The zero Query matches every record.
type Query struct {
	Mode   Mode    `json:"mode,omitempty"`
	Groups []Group `json:"groups,omitempty"`
}

// IsEmpty reports whether the query contains no expressions at all
func (q Query) IsEmpty() bool {
	for _, g := range q.Groups {
		if len(g.Expressions) > 0 {
			return false
		}
	}
	return true
}
