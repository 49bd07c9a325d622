package filter

import (
	"sort"
	"strconv"
)

// FacetValue is one distinct field value with its occurrence count
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facet is a field's value histogram, used to drive filter UI widgets
type Facet struct {
	Field  string       `json:"field"`
	Values []FacetValue `json:"values"`
}

// Facets computes value histograms for every multiselect field in the
// schema over the given records. Facet values sort by descending count then
// ascending value; facets sort by field name.
func (e *Evaluator[T]) Facets(records []T) []Facet {
	fields := make([]string, 0, len(e.schema))
	for name, acc := range e.schema {
		if acc.Multiselect {
			fields = append(fields, name)
		}
	}
	sort.Strings(fields)

	facets := make([]Facet, 0, len(fields))
	for _, name := range fields {
		acc := e.schema[name]
		counts := make(map[string]int)
		for _, rec := range records {
			switch acc.Kind {
			case KindString:
				if v := acc.Str(rec); v != "" {
					counts[v]++
				}
			case KindNumber:
				counts[strconv.FormatFloat(acc.Num(rec), 'f', -1, 64)]++
			case KindList:
				for _, v := range acc.List(rec) {
					if v != "" {
						counts[v]++
					}
				}
			}
		}

		values := make([]FacetValue, 0, len(counts))
		for v, c := range counts {
			values = append(values, FacetValue{Value: v, Count: c})
		}
		sort.Slice(values, func(i, j int) bool {
			if values[i].Count != values[j].Count {
				return values[i].Count > values[j].Count
			}
			return values[i].Value < values[j].Value
		})

		facets = append(facets, Facet{Field: name, Values: values})
	}
	return facets
}
