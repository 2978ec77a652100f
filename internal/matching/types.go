package matching

// FieldType identifies which client record field a similarity score applies to.
type FieldType string

const (
	FieldTypeEmail FieldType = "email"
	FieldTypePhone FieldType = "phone"
	FieldTypeName  FieldType = "name"
	FieldTypeVenue FieldType = "venue"
)

// SimilarityResult describes how closely two values of one field match.
// IsExact reports a perfect score; fuzzy fields can reach it through
// different spellings that normalize identically.
type SimilarityResult struct {
	Type    FieldType
	Score   float64
	IsExact bool
}
