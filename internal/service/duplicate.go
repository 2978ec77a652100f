package service

import (
	"sort"

	"event-crm/backend/internal/logger"
	"event-crm/backend/internal/matching"
)

// ClientRecord is a snapshot of an event-client record supplied by the
// caller for duplicate checks. Nil fields are absent; absence produces no
// similarity evidence for that field.
type ClientRecord struct {
	ID    string
	Name  *string
	Email *string
	Phone *string
	Venue *string
}

// FieldMatch is the similarity evidence for one field of a record pair.
type FieldMatch struct {
	Field          matching.FieldType
	Score          float64
	IsExact        bool
	MeetsThreshold bool
	Reason         string
}

// DuplicateMatch is one record flagged as a likely duplicate of the
// candidate. Fields holds only the evidence that met its threshold;
// Confidence is the strongest passing field score.
type DuplicateMatch struct {
	Record     ClientRecord
	Fields     []FieldMatch
	Confidence float64
}

// DuplicateScanResult summarizes one scan over caller-provided records.
type DuplicateScanResult struct {
	Matches []DuplicateMatch
	Scanned int
	Skipped int
}

// DuplicateScanService flags likely duplicates among caller-provided
// records. It owns no storage; candidate sets always arrive with the
// request. Thresholds and the scan cap are fixed at construction.
type DuplicateScanService struct {
	thresholds     matching.Thresholds
	maxScanRecords int
}

// NewDuplicateScanService creates a new duplicate scan service.
func NewDuplicateScanService(thresholds matching.Thresholds, maxScanRecords int) *DuplicateScanService {
	return &DuplicateScanService{
		thresholds:     thresholds,
		maxScanRecords: maxScanRecords,
	}
}

// Thresholds returns the decision table the service applies.
func (s *DuplicateScanService) Thresholds() matching.Thresholds {
	return s.thresholds
}

// CompareFields computes similarity evidence for every comparable field of
// two records, identifiers first. Fields missing on either side are
// omitted entirely rather than scored zero.
func (s *DuplicateScanService) CompareFields(a, b ClientRecord) []FieldMatch {
	pairs := []struct {
		fieldType matching.FieldType
		v1, v2    *string
	}{
		{matching.FieldTypeEmail, a.Email, b.Email},
		{matching.FieldTypePhone, a.Phone, b.Phone},
		{matching.FieldTypeName, a.Name, b.Name},
		{matching.FieldTypeVenue, a.Venue, b.Venue},
	}

	var fields []FieldMatch
	for _, p := range pairs {
		result := matching.CalculateSimilarity(p.v1, p.v2, p.fieldType)
		if result == nil {
			continue
		}
		fields = append(fields, FieldMatch{
			Field:          result.Type,
			Score:          result.Score,
			IsExact:        result.IsExact,
			MeetsThreshold: s.thresholds.Meets(result),
			Reason:         matching.MatchReasonLabel(result),
		})
	}
	return fields
}

// FindDuplicates scans the provided records for likely duplicates of the
// candidate. A record is flagged when at least one field meets its
// threshold. Matches are ordered strongest first; the sort is stable so
// ties keep their input order. Records beyond the scan cap are skipped
// and counted in the result.
func (s *DuplicateScanService) FindDuplicates(candidate ClientRecord, records []ClientRecord) DuplicateScanResult {
	scanned := records
	skipped := 0
	if s.maxScanRecords > 0 && len(records) > s.maxScanRecords {
		skipped = len(records) - s.maxScanRecords
		scanned = records[:s.maxScanRecords]
		logger.Warn().
			Int("records", len(records)).
			Int("cap", s.maxScanRecords).
			Msg("duplicate scan truncated to cap")
	}

	var matches []DuplicateMatch
	for _, record := range scanned {
		fields := s.CompareFields(candidate, record)

		var passing []FieldMatch
		var confidence float64
		for _, f := range fields {
			if !f.MeetsThreshold {
				continue
			}
			passing = append(passing, f)
			if f.Score > confidence {
				confidence = f.Score
			}
		}

		if len(passing) == 0 {
			continue
		}

		matches = append(matches, DuplicateMatch{
			Record:     record,
			Fields:     passing,
			Confidence: confidence,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	logger.Debug().
		Int("scanned", len(scanned)).
		Int("skipped", skipped).
		Int("matches", len(matches)).
		Msg("duplicate scan complete")

	return DuplicateScanResult{
		Matches: matches,
		Scanned: len(scanned),
		Skipped: skipped,
	}
}
