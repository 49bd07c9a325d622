package suggest

import (
	"testing"

	"github.com/fizzlab/sodacraft/internal/models"
)

func testSuggester() *Suggester {
	recipes := []models.Recipe{
		{Name: "Classic Craft Cola", Tags: []string{"classic", "caffeinated"}},
		{Name: "Cola Zero", Tags: []string{"sugar-free", "caffeinated"}},
		{Name: "Berry Surge", Tags: []string{"energy", "fruity"}},
	}
	ingredients := []models.Ingredient{
		{Name: "Kola Nut Extract"},
		{Name: "Cane Sugar"},
		{Name: "Citric Acid"},
	}
	return NewSuggester(recipes, ingredients)
}

func TestSuggestPrefix(t *testing.T) {
	s := testSuggester()

	got := s.Suggest("col", 0)
	if len(got) == 0 {
		t.Fatal("expected suggestions for 'col'")
	}
	// Both cola recipes complete the prefix
	texts := make(map[string]Kind)
	for _, sug := range got {
		texts[sug.Text] = sug.Kind
	}
	if _, ok := texts["Cola Zero"]; !ok {
		t.Errorf("missing 'Cola Zero' in %v", got)
	}
	if _, ok := texts["Classic Craft Cola"]; !ok {
		t.Errorf("missing 'Classic Craft Cola' in %v", got)
	}
	if k := texts["Cola Zero"]; k != KindRecipe {
		t.Errorf("'Cola Zero' kind = %q, want recipe", k)
	}
}

func TestSuggestFuzzy(t *testing.T) {
	s := testSuggester()

	// One substitution away from "energy"
	got := s.Suggest("energi", 0)
	found := false
	for _, sug := range got {
		if sug.Text == "energy" && sug.Kind == KindTag {
			found = true
		}
	}
	if !found {
		t.Errorf("fuzzy suggest missed 'energy' tag: %v", got)
	}
}

func TestSuggestIngredients(t *testing.T) {
	s := testSuggester()

	got := s.Suggest("kola", 0)
	found := false
	for _, sug := range got {
		if sug.Text == "Kola Nut Extract" && sug.Kind == KindIngredient {
			found = true
		}
	}
	if !found {
		t.Errorf("missing ingredient suggestion: %v", got)
	}
}

func TestSuggestLimit(t *testing.T) {
	s := testSuggester()

	got := s.Suggest("c", 2)
	if len(got) > 2 {
		t.Errorf("limit 2 returned %d suggestions", len(got))
	}
}

func TestSuggestEmptyQuery(t *testing.T) {
	s := testSuggester()

	if got := s.Suggest("", 5); len(got) != 0 {
		t.Errorf("empty query returned %v", got)
	}
	if got := s.Suggest("  !! ", 5); len(got) != 0 {
		t.Errorf("punctuation-only query returned %v", got)
	}
}

func TestSuggestDeduplicates(t *testing.T) {
	recipes := []models.Recipe{
		{Name: "Cola", Tags: []string{"cola"}},
		{Name: "cola"},
	}
	s := NewSuggester(recipes, nil)

	got := s.Suggest("cola", 10)
	if len(got) != 1 {
		t.Errorf("duplicate terms not collapsed: %v", got)
	}
	if len(got) == 1 && got[0].Kind != KindRecipe {
		t.Errorf("first-seen kind lost: %v", got[0])
	}
}
