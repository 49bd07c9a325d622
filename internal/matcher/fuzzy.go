package matcher

import (
	"strings"
	"unicode"
)

// DefaultSimilarityThreshold is the minimum normalized Levenshtein
// similarity at which a fuzzy comparison counts as a match.
const DefaultSimilarityThreshold = 0.72

// Levenshtein computes the case-insensitive edit distance between two strings
func Levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Single-row DP
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// Similarity returns a normalized similarity in [0,1] derived from edit
// distance: 1 - dist/maxLen. Two empty strings are fully similar.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	dist := Levenshtein(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// Fuzzy reports whether a and b are similar at or above the given threshold
func Fuzzy(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}

// Score rates how well query matches target on a 0-100 scale.
// Tiers: exact > prefix > word-prefix > substring > fuzzy.
func Score(query, target string) int {
	q := Normalize(query)
	t := Normalize(target)
	if q == "" || t == "" {
		return 0
	}

	if q == t {
		return 100
	}

	score := 0

	if strings.HasPrefix(t, q) {
		score = 90
	}

	words := strings.Fields(t)
	if score < 80 {
		for _, w := range words {
			if strings.HasPrefix(w, q) {
				score = 80
				break
			}
		}
	}

	if strings.Contains(t, q) {
		// Shorter targets are more specific matches
		ratio := float64(len(q)) / float64(len(t))
		if s := 60 + int(ratio*25); s > score {
			score = s
		}
	}

	// Whole-string fuzzy floor
	if s := int(Similarity(q, t) * 50); s > score {
		score = s
	}

	// Best-word fuzzy: a close match on a single word beats a weak match on
	// the whole string
	for _, w := range words {
		if s := int(Similarity(q, w) * 70); s > score {
			score = s
		}
	}

	return score
}

// Normalize lowercases, strips non-alphanumeric runes to spaces, and
// collapses whitespace
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
