package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fizzlab/sodacraft/internal/matcher"
)

// Evaluator applies filter queries to records of one schema
type Evaluator[T any] struct {
	schema         Schema[T]
	fuzzyThreshold float64
}

// NewEvaluator creates an evaluator over the given field schema
func NewEvaluator[T any](schema Schema[T]) *Evaluator[T] {
	return &Evaluator[T]{
		schema:         schema,
		fuzzyThreshold: matcher.DefaultSimilarityThreshold,
	}
}

// Apply returns the subset of records matching the query, in input order.
// An empty query returns the input unchanged.
func (e *Evaluator[T]) Apply(records []T, q Query) []T {
	if q.IsEmpty() {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if e.Match(rec, q) {
			out = append(out, rec)
		}
	}
	return out
}

// Match reports whether a single record satisfies the query.
// Groups without expressions are vacuously true.
func (e *Evaluator[T]) Match(rec T, q Query) bool {
	if q.IsEmpty() {
		return true
	}
	mode := normalizeMode(q.Mode)
	for _, g := range q.Groups {
		matched := e.matchGroup(rec, g)
		if mode == ModeAnd && !matched {
			return false
		}
		if mode == ModeOr && matched {
			return true
		}
	}
	return mode == ModeAnd
}

func (e *Evaluator[T]) matchGroup(rec T, g Group) bool {
	if len(g.Expressions) == 0 {
		return true
	}
	mode := normalizeMode(g.Mode)
	for _, expr := range g.Expressions {
		matched := e.matchExpression(rec, expr)
		if mode == ModeAnd && !matched {
			return false
		}
		if mode == ModeOr && matched {
			return true
		}
	}
	return mode == ModeAnd
}

// matchExpression evaluates one triple against one record. Unknown fields,
// inapplicable operators, and malformed values all evaluate to false;
// Validate surfaces them to callers ahead of evaluation.
func (e *Evaluator[T]) matchExpression(rec T, expr Expression) bool {
	acc, ok := e.schema[expr.Field]
	if !ok {
		return false
	}

	switch acc.Kind {
	case KindString:
		return e.matchString(acc.Str(rec), expr)
	case KindNumber:
		return matchNumber(acc.Num(rec), expr)
	case KindList:
		return matchList(acc.List(rec), expr)
	}
	return false
}

func (e *Evaluator[T]) matchString(fieldVal string, expr Expression) bool {
	switch expr.Operator {
	case OpEq, OpNeq:
		want, ok := asString(expr.Value)
		if !ok {
			return false
		}
		eq := strings.EqualFold(fieldVal, want)
		if expr.Operator == OpNeq {
			return !eq
		}
		return eq
	case OpContains:
		want, ok := asString(expr.Value)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(fieldVal), strings.ToLower(want))
	case OpIn:
		want, ok := asStringList(expr.Value)
		if !ok {
			return false
		}
		for _, w := range want {
			if strings.EqualFold(fieldVal, w) {
				return true
			}
		}
		return false
	case OpRegex:
		pattern, ok := asString(expr.Value)
		if !ok {
			return false
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		return re.MatchString(fieldVal)
	case OpFuzzy:
		want, ok := asString(expr.Value)
		if !ok {
			return false
		}
		return matcher.Fuzzy(want, fieldVal, e.fuzzyThreshold)
	}
	return false
}

func matchNumber(fieldVal float64, expr Expression) bool {
	switch expr.Operator {
	case OpEq, OpNeq:
		want, ok := asNumber(expr.Value)
		if !ok {
			return false
		}
		eq := fieldVal == want
		if expr.Operator == OpNeq {
			return !eq
		}
		return eq
	case OpBetween:
		lo, hi, ok := asNumberPair(expr.Value)
		if !ok {
			return false
		}
		return fieldVal >= lo && fieldVal <= hi
	case OpIn:
		want, ok := asNumberList(expr.Value)
		if !ok {
			return false
		}
		for _, w := range want {
			if fieldVal == w {
				return true
			}
		}
		return false
	case OpGt, OpGte, OpLt, OpLte:
		want, ok := asNumber(expr.Value)
		if !ok {
			return false
		}
		switch expr.Operator {
		case OpGt:
			return fieldVal > want
		case OpGte:
			return fieldVal >= want
		case OpLt:
			return fieldVal < want
		default:
			return fieldVal <= want
		}
	}
	return false
}

func matchList(fieldVals []string, expr Expression) bool {
	switch expr.Operator {
	case OpHas:
		want, ok := asString(expr.Value)
		if !ok {
			return false
		}
		for _, v := range fieldVals {
			if strings.EqualFold(v, want) {
				return true
			}
		}
		return false
	case OpContains:
		want, ok := asString(expr.Value)
		if !ok {
			return false
		}
		lw := strings.ToLower(want)
		for _, v := range fieldVals {
			if strings.Contains(strings.ToLower(v), lw) {
				return true
			}
		}
		return false
	case OpIn:
		want, ok := asStringList(expr.Value)
		if !ok {
			return false
		}
		for _, v := range fieldVals {
			for _, w := range want {
				if strings.EqualFold(v, w) {
					return true
				}
			}
		}
		return false
	}
	return false
}

// operatorsByKind lists which operators apply to each field kind
var operatorsByKind = map[Kind][]Operator{
	KindString: {OpEq, OpNeq, OpContains, OpIn, OpRegex, OpFuzzy},
	KindNumber: {OpEq, OpNeq, OpBetween, OpIn, OpGt, OpGte, OpLt, OpLte},
	KindList:   {OpHas, OpContains, OpIn},
}

// Validate checks a query for unknown fields, operators inapplicable to a
// field's kind, and malformed values. Evaluation treats all of those as
// non-matches; handlers call Validate first to turn them into 400s instead.
func (e *Evaluator[T]) Validate(q Query) error {
	for gi, g := range q.Groups {
		for ei, expr := range g.Expressions {
			acc, ok := e.schema[expr.Field]
			if !ok {
				return fmt.Errorf("group %d expression %d: unknown field %q", gi, ei, expr.Field)
			}
			if !operatorApplies(acc.Kind, expr.Operator) {
				return fmt.Errorf("group %d expression %d: operator %q not applicable to field %q", gi, ei, expr.Operator, expr.Field)
			}
			if err := validateValue(acc.Kind, expr); err != nil {
				return fmt.Errorf("group %d expression %d: %w", gi, ei, err)
			}
		}
	}
	return nil
}

func operatorApplies(k Kind, op Operator) bool {
	for _, o := range operatorsByKind[k] {
		if o == op {
			return true
		}
	}
	return false
}

func validateValue(k Kind, expr Expression) error {
	switch expr.Operator {
	case OpBetween:
		if _, _, ok := asNumberPair(expr.Value); !ok {
			return fmt.Errorf("operator %q requires a two-number range value", expr.Operator)
		}
	case OpIn:
		if k == KindNumber {
			if _, ok := asNumberList(expr.Value); !ok {
				return fmt.Errorf("operator %q requires a list of numbers", expr.Operator)
			}
		} else {
			if _, ok := asStringList(expr.Value); !ok {
				return fmt.Errorf("operator %q requires a list of strings", expr.Operator)
			}
		}
	case OpRegex:
		pattern, ok := asString(expr.Value)
		if !ok {
			return fmt.Errorf("operator %q requires a string pattern", expr.Operator)
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid regex pattern: %w", err)
		}
	default:
		if k == KindNumber {
			if _, ok := asNumber(expr.Value); !ok {
				return fmt.Errorf("operator %q requires a number value", expr.Operator)
			}
		} else {
			if _, ok := asString(expr.Value); !ok {
				return fmt.Errorf("operator %q requires a string value", expr.Operator)
			}
		}
	}
	return nil
}

// Value coercion over decoded JSON. Filter values arrive as any because the
// wire format mixes strings, numbers, and lists per operator.

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func asStringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func asNumberList(v any) ([]float64, bool) {
	switch list := v.(type) {
	case []float64:
		return list, true
	case []any:
		out := make([]float64, 0, len(list))
		for _, item := range list {
			n, ok := asNumber(item)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	}
	return nil, false
}

func asNumberPair(v any) (float64, float64, bool) {
	list, ok := asNumberList(v)
	if !ok || len(list) != 2 {
		return 0, 0, false
	}
	return list[0], list[1], true
}
