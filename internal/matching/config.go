package matching

// CompositeWeights blends the two fuzzy scorers into one similarity score.
type CompositeWeights struct {
	Trigram     float64
	Levenshtein float64
}

// NameWeights drives NameSimilarity and VenueSimilarity. The weights sum
// to 1 so composite scores stay within [0, 1].
var NameWeights = CompositeWeights{
	Trigram:     0.6,
	Levenshtein: 0.4,
}

// Thresholds holds the minimum score per field type for a duplicate flag.
type Thresholds struct {
	Email float64
	Phone float64
	Name  float64
	Venue float64
}

// SimilarityThresholds is the default decision table. Identifier fields
// require exact matches; fuzzy fields tolerate spelling variance. The
// table is read-only for the process lifetime.
var SimilarityThresholds = Thresholds{
	Email: 1.0,
	Phone: 1.0,
	Name:  0.7,
	Venue: 0.65,
}

// For returns the threshold for a field type and whether the type is known.
func (t Thresholds) For(fieldType FieldType) (float64, bool) {
	switch fieldType {
	case FieldTypeEmail:
		return t.Email, true
	case FieldTypePhone:
		return t.Phone, true
	case FieldTypeName:
		return t.Name, true
	case FieldTypeVenue:
		return t.Venue, true
	}
	return 0, false
}

// Meets reports whether a result's score reaches the threshold for its
// field type. A score exactly at the threshold passes. A nil result or an
// unknown field type never does.
func (t Thresholds) Meets(result *SimilarityResult) bool {
	if result == nil {
		return false
	}
	threshold, ok := t.For(result.Type)
	if !ok {
		return false
	}
	return result.Score >= threshold
}

// MeetsThreshold checks a result against the default decision table.
func MeetsThreshold(result *SimilarityResult) bool {
	return SimilarityThresholds.Meets(result)
}
