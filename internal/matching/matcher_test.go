package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSimilarityEmail(t *testing.T) {
	t.Run("case and whitespace variants match exactly", func(t *testing.T) {
		result := CalculateSimilarity(stringPtr("Jane@Example.com"), stringPtr("jane@example.com "), FieldTypeEmail)
		require.NotNil(t, result)
		assert.Equal(t, FieldTypeEmail, result.Type)
		assert.Equal(t, 1.0, result.Score)
		assert.True(t, result.IsExact)
	})

	t.Run("different addresses score zero, not nil", func(t *testing.T) {
		result := CalculateSimilarity(stringPtr("jane@example.com"), stringPtr("john@example.com"), FieldTypeEmail)
		require.NotNil(t, result)
		assert.Equal(t, 0.0, result.Score)
		assert.False(t, result.IsExact)
	})
}

func TestCalculateSimilarityPhone(t *testing.T) {
	t.Run("formatting variants match exactly", func(t *testing.T) {
		result := CalculateSimilarity(stringPtr("(555) 123-4567"), stringPtr("5551234567"), FieldTypePhone)
		require.NotNil(t, result)
		assert.Equal(t, 1.0, result.Score)
		assert.True(t, result.IsExact)
	})

	t.Run("different numbers score zero", func(t *testing.T) {
		result := CalculateSimilarity(stringPtr("(555) 123-4567"), stringPtr("(555) 123-4568"), FieldTypePhone)
		require.NotNil(t, result)
		assert.Equal(t, 0.0, result.Score)
		assert.False(t, result.IsExact)
	})
}

func TestCalculateSimilarityName(t *testing.T) {
	t.Run("delegates to the composite scorer", func(t *testing.T) {
		result := CalculateSimilarity(stringPtr("John Smith"), stringPtr("John Smyth"), FieldTypeName)
		require.NotNil(t, result)
		assert.Equal(t, FieldTypeName, result.Type)
		assert.InDelta(t, 0.72, result.Score, 0.0001)
		assert.False(t, result.IsExact)
	})

	t.Run("identical names are exact", func(t *testing.T) {
		result := CalculateSimilarity(stringPtr("Jane Doe"), stringPtr("Jane Doe"), FieldTypeName)
		require.NotNil(t, result)
		assert.Equal(t, 1.0, result.Score)
		assert.True(t, result.IsExact)
	})
}

func TestCalculateSimilarityVenue(t *testing.T) {
	result := CalculateSimilarity(stringPtr("The Grand Ballroom"), stringPtr("Grand Ballroom Hall"), FieldTypeVenue)
	require.NotNil(t, result)
	assert.Equal(t, FieldTypeVenue, result.Type)
	assert.Equal(t, 1.0, result.Score)
	assert.True(t, result.IsExact)
}

func TestCalculateSimilarityMissingValues(t *testing.T) {
	tests := []struct {
		name   string
		value1 *string
		value2 *string
	}{
		{"first value nil", nil, stringPtr("Jane")},
		{"second value nil", stringPtr("Jane"), nil},
		{"both nil", nil, nil},
		{"first value empty", stringPtr(""), stringPtr("Jane")},
		{"second value empty", stringPtr("Jane"), stringPtr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, CalculateSimilarity(tt.value1, tt.value2, FieldTypeName))
		})
	}
}

func TestCalculateSimilarityUnknownFieldType(t *testing.T) {
	assert.Nil(t, CalculateSimilarity(stringPtr("a"), stringPtr("b"), FieldType("company")))
}

func TestMatchReasonLabel(t *testing.T) {
	tests := []struct {
		name     string
		result   *SimilarityResult
		expected string
	}{
		{"exact email", &SimilarityResult{Type: FieldTypeEmail, Score: 1.0, IsExact: true}, "Same email"},
		{"exact phone", &SimilarityResult{Type: FieldTypePhone, Score: 1.0, IsExact: true}, "Same phone"},
		{"exact name", &SimilarityResult{Type: FieldTypeName, Score: 1.0, IsExact: true}, "Same name"},
		{"exact venue", &SimilarityResult{Type: FieldTypeVenue, Score: 1.0, IsExact: true}, "Same venue"},
		{"fuzzy name rounds to two decimals", &SimilarityResult{Type: FieldTypeName, Score: 0.8234}, "Name similarity 0.82"},
		{"fuzzy venue", &SimilarityResult{Type: FieldTypeVenue, Score: 0.65}, "Venue similarity 0.65"},
		{"unknown type falls back", &SimilarityResult{Type: FieldType("company"), Score: 0.9}, "Match"},
		{"nil result falls back", nil, "Match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchReasonLabel(tt.result))
		})
	}
}

// Helper function to create string pointers
func stringPtr(s string) *string {
	return &s
}
