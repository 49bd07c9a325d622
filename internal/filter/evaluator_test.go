package filter

import (
	"testing"

	"github.com/fizzlab/sodacraft/internal/models"
)

func testRecipes() []models.Recipe {
	return []models.Recipe{
		{ID: 1, Name: "Cola", Style: "cola", CaffeineMg: 34, Rating: 4.6, Tags: []string{"classic", "caffeinated"}, Ingredients: []string{"Kola Nut Extract", "Cane Sugar"}},
		{ID: 2, Name: "Cola Zero", Style: "cola", CaffeineMg: 34, Rating: 4.1, Tags: []string{"sugar-free", "caffeinated"}, Ingredients: []string{"Kola Nut Extract", "Stevia Extract"}},
		{ID: 3, Name: "Berry", Style: "berry", CaffeineMg: 80, Rating: 4.4, Tags: []string{"fruity", "caffeinated"}, Ingredients: []string{"Raspberry Concentrate"}},
		{ID: 4, Name: "Hibiscus Cooler", Style: "herbal", CaffeineMg: 0, Rating: 4.3, Tags: []string{"caffeine-free", "herbal"}, Ingredients: []string{"Hibiscus Flower"}},
	}
}

func exprQuery(exprs ...Expression) Query {
	return Query{Groups: []Group{{Expressions: exprs}}}
}

func ids(recipes []models.Recipe) []int64 {
	out := make([]int64, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyEmptyQueryIsIdentity(t *testing.T) {
	e := NewEvaluator(RecipeSchema())
	records := testRecipes()

	for _, q := range []Query{
		{},
		{Groups: []Group{}},
		{Groups: []Group{{}}},
		{Mode: ModeOr, Groups: []Group{{Mode: ModeOr}}},
	} {
		got := e.Apply(records, q)
		if !equalIDs(ids(got), ids(records)) {
			t.Errorf("empty query %+v changed output: got %v", q, ids(got))
		}
	}
}

func TestApplyContainsCaseInsensitive(t *testing.T) {
	e := NewEvaluator(RecipeSchema())
	records := []models.Recipe{
		{ID: 1, Name: "Cola"},
		{ID: 2, Name: "Cola Zero"},
		{ID: 3, Name: "Berry"},
	}

	got := e.Apply(records, exprQuery(Expression{Field: "name", Operator: OpContains, Value: "cola"}))
	if !equalIDs(ids(got), []int64{1, 2}) {
		t.Errorf("contains 'cola' = %v, want [1 2]", ids(got))
	}
}

func TestApplyOperators(t *testing.T) {
	e := NewEvaluator(RecipeSchema())
	records := testRecipes()

	tests := []struct {
		name string
		expr Expression
		want []int64
	}{
		{"eq string", Expression{Field: "style", Operator: OpEq, Value: "cola"}, []int64{1, 2}},
		{"eq string case fold", Expression{Field: "style", Operator: OpEq, Value: "COLA"}, []int64{1, 2}},
		{"neq string", Expression{Field: "style", Operator: OpNeq, Value: "cola"}, []int64{3, 4}},
		{"in string", Expression{Field: "style", Operator: OpIn, Value: []any{"berry", "herbal"}}, []int64{3, 4}},
		{"regex", Expression{Field: "name", Operator: OpRegex, Value: "^Cola( Zero)?$"}, []int64{1, 2}},
		{"fuzzy close", Expression{Field: "name", Operator: OpFuzzy, Value: "colla"}, []int64{1}},
		{"has tag", Expression{Field: "tags", Operator: OpHas, Value: "caffeinated"}, []int64{1, 2, 3}},
		{"has tag case fold", Expression{Field: "tags", Operator: OpHas, Value: "Herbal"}, []int64{4}},
		{"list contains", Expression{Field: "ingredients", Operator: OpContains, Value: "kola"}, []int64{1, 2}},
		{"list in", Expression{Field: "tags", Operator: OpIn, Value: []any{"fruity", "sugar-free"}}, []int64{2, 3}},
		{"eq number", Expression{Field: "caffeineMg", Operator: OpEq, Value: float64(34)}, []int64{1, 2}},
		{"between", Expression{Field: "caffeineMg", Operator: OpBetween, Value: []any{float64(1), float64(50)}}, []int64{1, 2}},
		{"between inclusive bounds", Expression{Field: "caffeineMg", Operator: OpBetween, Value: []any{float64(34), float64(80)}}, []int64{1, 2, 3}},
		{"gt", Expression{Field: "caffeineMg", Operator: OpGt, Value: float64(34)}, []int64{3}},
		{"gte", Expression{Field: "caffeineMg", Operator: OpGte, Value: float64(34)}, []int64{1, 2, 3}},
		{"lt", Expression{Field: "rating", Operator: OpLt, Value: 4.3}, []int64{2}},
		{"lte", Expression{Field: "rating", Operator: OpLte, Value: 4.3}, []int64{2, 4}},
		{"in number", Expression{Field: "caffeineMg", Operator: OpIn, Value: []any{float64(0), float64(80)}}, []int64{3, 4}},
		{"number value as string", Expression{Field: "caffeineMg", Operator: OpGt, Value: "50"}, []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Apply(records, exprQuery(tt.expr))
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("got %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestApplyUnknownFieldMatchesNothing(t *testing.T) {
	e := NewEvaluator(RecipeSchema())
	got := e.Apply(testRecipes(), exprQuery(Expression{Field: "nope", Operator: OpEq, Value: "x"}))
	if len(got) != 0 {
		t.Errorf("unknown field matched %v records, want 0", len(got))
	}
}

func TestAndNeverWidens(t *testing.T) {
	e := NewEvaluator(RecipeSchema())
	records := testRecipes()

	exprs := []Expression{
		{Field: "style", Operator: OpEq, Value: "cola"},
		{Field: "caffeineMg", Operator: OpGt, Value: float64(0)},
		{Field: "tags", Operator: OpHas, Value: "caffeinated"},
	}

	combined := e.Apply(records, Query{Groups: []Group{{Mode: ModeAnd, Expressions: exprs}}})
	for _, expr := range exprs {
		single := e.Apply(records, exprQuery(expr))
		if len(combined) > len(single) {
			t.Errorf("AND result (%d) larger than single filter %v result (%d)", len(combined), expr, len(single))
		}
	}
}

func TestOrNeverNarrows(t *testing.T) {
	e := NewEvaluator(RecipeSchema())
	records := testRecipes()

	exprs := []Expression{
		{Field: "style", Operator: OpEq, Value: "cola"},
		{Field: "caffeineMg", Operator: OpEq, Value: float64(0)},
	}

	combined := e.Apply(records, Query{Groups: []Group{{Mode: ModeOr, Expressions: exprs}}})
	for _, expr := range exprs {
		single := e.Apply(records, exprQuery(expr))
		if len(combined) < len(single) {
			t.Errorf("OR result (%d) smaller than single filter %v result (%d)", len(combined), expr, len(single))
		}
	}
}

func TestGroupComposition(t *testing.T) {
	e := NewEvaluator(RecipeSchema())
	records := testRecipes()

	// (style=cola) AND (caffeinated OR herbal)
	q := Query{
		Mode: ModeAnd,
		Groups: []Group{
			{Expressions: []Expression{{Field: "style", Operator: OpEq, Value: "cola"}}},
			{Mode: ModeOr, Expressions: []Expression{
				{Field: "tags", Operator: OpHas, Value: "caffeinated"},
				{Field: "tags", Operator: OpHas, Value: "herbal"},
			}},
		},
	}
	got := e.Apply(records, q)
	if !equalIDs(ids(got), []int64{1, 2}) {
		t.Errorf("AND of groups = %v, want [1 2]", ids(got))
	}

	// (style=berry) OR (caffeine=0) across groups
	q = Query{
		Mode: ModeOr,
		Groups: []Group{
			{Expressions: []Expression{{Field: "style", Operator: OpEq, Value: "berry"}}},
			{Expressions: []Expression{{Field: "caffeineMg", Operator: OpEq, Value: float64(0)}}},
		},
	}
	got = e.Apply(records, q)
	if !equalIDs(ids(got), []int64{3, 4}) {
		t.Errorf("OR of groups = %v, want [3 4]", ids(got))
	}
}

func TestFuzzyOperatorReflexive(t *testing.T) {
	e := NewEvaluator(RecipeSchema())
	records := testRecipes()

	// Filtering each record by its own exact name always matches it
	for _, r := range records {
		got := e.Apply(records, exprQuery(Expression{Field: "name", Operator: OpFuzzy, Value: r.Name}))
		found := false
		for _, g := range got {
			if g.ID == r.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("fuzzy self-match missed record %d (%q)", r.ID, r.Name)
		}
	}
}

func TestValidate(t *testing.T) {
	e := NewEvaluator(RecipeSchema())

	tests := []struct {
		name    string
		q       Query
		wantErr bool
	}{
		{"empty", Query{}, false},
		{"valid", exprQuery(Expression{Field: "name", Operator: OpContains, Value: "cola"}), false},
		{"unknown field", exprQuery(Expression{Field: "flavor", Operator: OpEq, Value: "x"}), true},
		{"operator kind mismatch", exprQuery(Expression{Field: "caffeineMg", Operator: OpContains, Value: "3"}), true},
		{"between needs pair", exprQuery(Expression{Field: "caffeineMg", Operator: OpBetween, Value: []any{float64(1)}}), true},
		{"bad regex", exprQuery(Expression{Field: "name", Operator: OpRegex, Value: "("}), true},
		{"in needs list", exprQuery(Expression{Field: "style", Operator: OpIn, Value: "cola"}), true},
		{"number needs number", exprQuery(Expression{Field: "rating", Operator: OpGt, Value: "not-a-number"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.Validate(tt.q)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
