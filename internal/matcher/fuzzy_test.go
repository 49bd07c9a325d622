package matcher

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "cola", "cola", 0},
		{"case insensitive", "Cola", "cOLA", 0},
		{"empty left", "", "berry", 5},
		{"empty right", "berry", "", 5},
		{"both empty", "", "", 0},
		{"single substitution", "cola", "kola", 1},
		{"insertion", "cola", "colas", 1},
		{"deletion", "colas", "cola", 1},
		{"unrelated", "abc", "xyz", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	// Reflexive: any string is fully similar to itself
	for _, s := range []string{"", "a", "Berry Surge", "classic craft cola"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}

	// One edit in a four-rune string
	if got := Similarity("cola", "kola"); got != 0.75 {
		t.Errorf("Similarity(cola, kola) = %v, want 0.75", got)
	}

	// Completely different strings bottom out at 0
	if got := Similarity("aaa", "zzz"); got != 0 {
		t.Errorf("Similarity(aaa, zzz) = %v, want 0", got)
	}
}

func TestFuzzyReflexive(t *testing.T) {
	// Matching a value against itself always succeeds at any threshold
	for _, s := range []string{"cola", "Berry Surge", "ginger root revival"} {
		if !Fuzzy(s, s, DefaultSimilarityThreshold) {
			t.Errorf("Fuzzy(%q, %q) = false, want true", s, s)
		}
	}
}

func TestScoreTiers(t *testing.T) {
	exact := Score("cola zero", "Cola Zero")
	prefix := Score("cola", "Cola Zero")
	substr := Score("zer", "Cola Zero")
	fuzzy := Score("colaa zeroo", "Cola Zero")
	miss := Score("hibiscus", "Cola Zero")

	if exact != 100 {
		t.Errorf("exact match score = %d, want 100", exact)
	}
	if prefix >= exact {
		t.Errorf("prefix score %d should be below exact %d", prefix, exact)
	}
	if substr >= prefix {
		t.Errorf("substring score %d should be below prefix %d", substr, prefix)
	}
	if fuzzy >= prefix {
		t.Errorf("fuzzy score %d should be below prefix %d", fuzzy, prefix)
	}
	if miss >= fuzzy {
		t.Errorf("miss score %d should be below fuzzy %d", miss, fuzzy)
	}
}

func TestScoreWordPrefix(t *testing.T) {
	// Query matching the start of a later word ranks above plain substring
	got := Score("surge", "Berry Surge Deluxe")
	if got < 80 {
		t.Errorf("word-prefix score = %d, want >= 80", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Cola  Zero ", "cola zero"},
		{"Berry-Surge!", "berry surge"},
		{"ENERGY", "energy"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
