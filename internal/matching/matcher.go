package matching

import (
	"fmt"
	"strings"
)

// CalculateSimilarity compares two values of one field type. It returns
// nil when either value is missing or empty: an absent field is no
// evidence for or against a match, which is not the same as a score of
// zero. Unknown field types also return nil.
func CalculateSimilarity(value1, value2 *string, fieldType FieldType) *SimilarityResult {
	if value1 == nil || value2 == nil || *value1 == "" || *value2 == "" {
		return nil
	}

	var score float64
	switch fieldType {
	case FieldTypeEmail:
		score = exactMatchScore(NormalizeEmail(*value1), NormalizeEmail(*value2))
	case FieldTypePhone:
		score = exactMatchScore(NormalizePhone(*value1), NormalizePhone(*value2))
	case FieldTypeName:
		score = NameSimilarity(*value1, *value2)
	case FieldTypeVenue:
		score = VenueSimilarity(*value1, *value2)
	default:
		return nil
	}

	return &SimilarityResult{
		Type:    fieldType,
		Score:   score,
		IsExact: score == 1.0,
	}
}

// exactMatchScore treats identifier fields as binary: equal after
// normalization or no match at all. No fuzzy credit.
func exactMatchScore(a, b string) float64 {
	if a == b {
		return 1.0
	}
	return 0
}

// MatchReasonLabel renders a result as the short explanation shown next
// to a flagged duplicate, e.g. "Same email" for exact matches and
// "Name similarity 0.82" for fuzzy ones. Always non-empty; unknown or
// nil results fall back to "Match".
func MatchReasonLabel(result *SimilarityResult) string {
	if result == nil {
		return "Match"
	}

	switch result.Type {
	case FieldTypeEmail, FieldTypePhone, FieldTypeName, FieldTypeVenue:
	default:
		return "Match"
	}

	if result.IsExact {
		return "Same " + string(result.Type)
	}

	field := strings.ToUpper(string(result.Type)[:1]) + string(result.Type)[1:]
	return fmt.Sprintf("%s similarity %.2f", field, result.Score)
}
