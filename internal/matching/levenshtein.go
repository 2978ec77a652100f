package matching

import "strings"

// LevenshteinSimilarity scores two strings by normalized edit distance:
// 1 - distance/maxLen over lowercased rune sequences. Two empty strings
// are a perfect match; one empty string scores 0.
func LevenshteinSimilarity(s1, s2 string) float64 {
	a := []rune(strings.ToLower(s1))
	b := []rune(strings.ToLower(s2))

	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1
	}

	distance := levenshteinDistance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}

// levenshteinDistance computes the edit distance between two rune slices
// with unit cost for insertions, deletions, and substitutions, using two
// rolling rows of the full distance matrix.
func levenshteinDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	prevRow := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prevRow[j] = j
	}

	for i := 1; i <= len(a); i++ {
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			row[j] = min(row[j-1]+1, prevRow[j]+1, prevRow[j-1]+cost)
		}
		row, prevRow = prevRow, row
	}

	return prevRow[len(b)]
}
