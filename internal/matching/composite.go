package matching

import "strings"

// venueStopwords are generic words that carry no identity in a venue name.
// Only whole words are stripped, so "club" inside "Clubhouse" survives.
var venueStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "at": true, "in": true, "on": true,
	"and": true, "or": true, "&": true,
	"club": true, "venue": true, "hall": true, "center": true, "centre": true,
	"restaurant": true, "bar": true, "lounge": true,
}

// NameSimilarity blends trigram and edit-distance similarity for person
// names using the package composite weights.
func NameSimilarity(s1, s2 string) float64 {
	return NameWeights.Trigram*TrigramSimilarity(s1, s2) +
		NameWeights.Levenshtein*LevenshteinSimilarity(s1, s2)
}

// VenueSimilarity scores venue names by stripping generic words ("The",
// "Club", "Hall") from both sides and applying NameSimilarity to what
// remains.
func VenueSimilarity(s1, s2 string) float64 {
	return NameSimilarity(stripVenueStopwords(s1), stripVenueStopwords(s2))
}

// stripVenueStopwords lowercases a venue name, drops stopword tokens, and
// collapses runs of whitespace to single spaces.
func stripVenueStopwords(venue string) string {
	words := strings.Fields(strings.ToLower(venue))
	kept := words[:0]
	for _, w := range words {
		if !venueStopwords[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
