package recommend

import (
	"context"
	"testing"

	"github.com/fizzlab/sodacraft/internal/models"
)

func testRecipes() []models.Recipe {
	return []models.Recipe{
		{ID: 1, Name: "Classic Craft Cola", Style: "cola", CaffeineMg: 34, Rating: 4.6},
		{ID: 2, Name: "Cola Zero", Style: "cola", CaffeineMg: 34, Rating: 4.1},
		{ID: 3, Name: "Berry Surge", Style: "berry", CaffeineMg: 80, Rating: 4.4},
		{ID: 4, Name: "Hibiscus Cooler", Style: "herbal", CaffeineMg: 0, Rating: 4.3},
		{ID: 5, Name: "Citrus Volt", Style: "energy", CaffeineMg: 120, Rating: 4.2},
	}
}

func TestRecommendRecipesOrderAndConfidence(t *testing.T) {
	p := NewStubProvider(testRecipes())
	ctx := context.Background()

	got, err := p.RecommendRecipes(ctx, Profile{}, 3)
	if err != nil {
		t.Fatalf("RecommendRecipes failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Confidence > got[i-1].Confidence {
			t.Errorf("recommendations not ordered best-first at %d", i)
		}
	}
	for _, r := range got {
		if r.Confidence <= 0 || r.Confidence > 1 {
			t.Errorf("confidence %v outside (0,1]", r.Confidence)
		}
	}
	// Unpersonalized picks follow rating order
	if got[0].Recipe.ID != 1 {
		t.Errorf("top pick = %d, want highest-rated recipe 1", got[0].Recipe.ID)
	}
}

func TestRecommendRecipesHonorsProfile(t *testing.T) {
	p := NewStubProvider(testRecipes())
	ctx := context.Background()

	got, err := p.RecommendRecipes(ctx, Profile{CaffeineFree: true}, 10)
	if err != nil {
		t.Fatalf("RecommendRecipes failed: %v", err)
	}
	for _, r := range got {
		if r.Recipe.CaffeineMg > 0 {
			t.Errorf("caffeine-free profile got caffeinated recipe %d", r.Recipe.ID)
		}
	}

	got, err = p.RecommendRecipes(ctx, Profile{PreferredStyles: []string{"berry"}}, 1)
	if err != nil {
		t.Fatalf("RecommendRecipes failed: %v", err)
	}
	if len(got) != 1 || got[0].Recipe.ID != 3 {
		t.Errorf("style boost failed: got %+v, want recipe 3 first", got)
	}
}

func TestSimilarRecipes(t *testing.T) {
	p := NewStubProvider(testRecipes())
	ctx := context.Background()

	got, err := p.SimilarRecipes(ctx, 1, 3)
	if err != nil {
		t.Fatalf("SimilarRecipes failed: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("no similar recipes returned")
	}
	for _, r := range got {
		if r.Recipe.ID == 1 {
			t.Error("similar set includes the base recipe")
		}
	}
	// The other cola at identical caffeine is the closest match
	if got[0].Recipe.ID != 2 {
		t.Errorf("closest = %d, want 2", got[0].Recipe.ID)
	}
}

func TestSimilarRecipesUnknownID(t *testing.T) {
	p := NewStubProvider(testRecipes())

	got, err := p.SimilarRecipes(context.Background(), 999, 3)
	if err != nil {
		t.Fatalf("SimilarRecipes failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unknown ID returned %d recipes, want 0", len(got))
	}
}

func TestTrendingStyles(t *testing.T) {
	p := NewStubProvider(testRecipes())

	got, err := p.TrendingStyles(context.Background())
	if err != nil {
		t.Fatalf("TrendingStyles failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d styles, want 4", len(got))
	}
	if got[0].Style != "cola" {
		t.Errorf("top style = %q, want cola (two recipes)", got[0].Style)
	}

	sum := 0.0
	for i, tr := range got {
		if i > 0 && tr.Share > got[i-1].Share {
			t.Errorf("shares not descending at %d", i)
		}
		sum += tr.Share
	}
	if sum > 1.0001 {
		t.Errorf("shares sum to %v, want <= 1", sum)
	}
}
