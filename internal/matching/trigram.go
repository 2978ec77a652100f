package matching

import "strings"

// TrigramSimilarity scores two strings by trigram set overlap, the same
// scheme Postgres pg_trgm uses. Each string is lowercased, trimmed, and
// padded with two spaces on either side before being cut into three-rune
// windows; the score is the Jaccard ratio of the two trigram sets.
func TrigramSimilarity(s1, s2 string) float64 {
	// Identical raw strings score exactly 1, including two empty ones.
	if s1 == s2 {
		return 1
	}

	a := strings.ToLower(strings.TrimSpace(s1))
	b := strings.ToLower(strings.TrimSpace(s2))
	if a == "" || b == "" {
		return 0
	}

	setA := trigramSet(a)
	setB := trigramSet(b)

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

// trigramSet collects the padded three-rune windows of a normalized string.
func trigramSet(s string) map[string]bool {
	padded := []rune("  " + s + "  ")
	set := make(map[string]bool, len(padded))
	for i := 0; i+3 <= len(padded); i++ {
		set[string(padded[i:i+3])] = true
	}
	return set
}
