package handlers

import (
	"net/http"

	"event-crm/backend/internal/api"
	"event-crm/backend/internal/matching"
	"event-crm/backend/internal/metrics"
	"event-crm/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SimilarityHandler handles similarity and duplicate scan HTTP requests
type SimilarityHandler struct {
	scanService *service.DuplicateScanService
	validator   *validator.Validate
}

// NewSimilarityHandler creates a new similarity handler
func NewSimilarityHandler(scanService *service.DuplicateScanService) *SimilarityHandler {
	return &SimilarityHandler{
		scanService: scanService,
		validator:   validator.New(),
	}
}

// CompareRequest represents the request to compare two field values
// @Description Field comparison request
type CompareRequest struct {
	FieldType string  `json:"field_type" validate:"required,oneof=email phone name venue" example:"name" enums:"email,phone,name,venue"`
	Value1    *string `json:"value1" validate:"omitempty,max=255" example:"John Smith"`
	Value2    *string `json:"value2" validate:"omitempty,max=255" example:"John Smyth"`
}

// SimilarityResultResponse represents a similarity score for one field
type SimilarityResultResponse struct {
	FieldType string  `json:"field_type" example:"name"`
	Score     float64 `json:"score" example:"0.72"`
	IsExact   bool    `json:"is_exact" example:"false"`
}

// CompareResponse represents the outcome of comparing two field values
// @Description Field comparison outcome. Result is null when either value is missing.
type CompareResponse struct {
	Result         *SimilarityResultResponse `json:"result"`
	MeetsThreshold bool                      `json:"meets_threshold" example:"true"`
	Reason         string                    `json:"reason" example:"Name similarity 0.72"`
}

// ClientRecordRequest represents one client record in a scan request
type ClientRecordRequest struct {
	ID    string  `json:"id" validate:"required,max=255" example:"c-1042"`
	Name  *string `json:"name,omitempty" validate:"omitempty,max=255" example:"John Smith"`
	Email *string `json:"email,omitempty" validate:"omitempty,max=255" example:"john.smith@example.com"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=50" example:"(555) 123-4567"`
	Venue *string `json:"venue,omitempty" validate:"omitempty,max=255" example:"The Grand Ballroom"`
}

// ScanRequest represents the request to scan records for duplicates of a candidate
// @Description Duplicate scan request
type ScanRequest struct {
	Candidate ClientRecordRequest   `json:"candidate"`
	Records   []ClientRecordRequest `json:"records" validate:"required,min=1,max=500,dive"`
}

// ClientRecordResponse represents a client record in responses
type ClientRecordResponse struct {
	ID    string  `json:"id" example:"c-1042"`
	Name  *string `json:"name,omitempty" example:"John Smith"`
	Email *string `json:"email,omitempty" example:"john.smith@example.com"`
	Phone *string `json:"phone,omitempty" example:"(555) 123-4567"`
	Venue *string `json:"venue,omitempty" example:"The Grand Ballroom"`
}

// FieldMatchResponse represents the match evidence for a single field
type FieldMatchResponse struct {
	Field          string  `json:"field" example:"email"`
	Score          float64 `json:"score" example:"1"`
	IsExact        bool    `json:"is_exact" example:"true"`
	MeetsThreshold bool    `json:"meets_threshold" example:"true"`
	Reason         string  `json:"reason" example:"Same email"`
}

// DuplicateMatchResponse represents one record flagged as a likely duplicate
// @Description Likely duplicate with per-field evidence
type DuplicateMatchResponse struct {
	Record     ClientRecordResponse `json:"record"`
	Fields     []FieldMatchResponse `json:"fields"`
	Confidence float64              `json:"confidence" example:"1"`
}

// ThresholdsResponse represents the active similarity decision table
// @Description Similarity thresholds and composite weights
type ThresholdsResponse struct {
	Email       float64         `json:"email" example:"1"`
	Phone       float64         `json:"phone" example:"1"`
	Name        float64         `json:"name" example:"0.7"`
	Venue       float64         `json:"venue" example:"0.65"`
	NameWeights WeightsResponse `json:"name_weights"`
}

// WeightsResponse represents the composite name score weights
type WeightsResponse struct {
	Trigram     float64 `json:"trigram" example:"0.6"`
	Levenshtein float64 `json:"levenshtein" example:"0.4"`
}

// Helper function to convert a request record to the service model
func recordFromRequest(req ClientRecordRequest) service.ClientRecord {
	return service.ClientRecord{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Venue: req.Venue,
	}
}

// Helper function to convert a service record to a response
func recordToResponse(record service.ClientRecord) ClientRecordResponse {
	return ClientRecordResponse{
		ID:    record.ID,
		Name:  record.Name,
		Email: record.Email,
		Phone: record.Phone,
		Venue: record.Venue,
	}
}

func fieldMatchToResponse(match service.FieldMatch) FieldMatchResponse {
	return FieldMatchResponse{
		Field:          string(match.Field),
		Score:          match.Score,
		IsExact:        match.IsExact,
		MeetsThreshold: match.MeetsThreshold,
		Reason:         match.Reason,
	}
}

func duplicateMatchToResponse(match service.DuplicateMatch) DuplicateMatchResponse {
	fields := make([]FieldMatchResponse, len(match.Fields))
	for i, fieldMatch := range match.Fields {
		fields[i] = fieldMatchToResponse(fieldMatch)
	}

	return DuplicateMatchResponse{
		Record:     recordToResponse(match.Record),
		Fields:     fields,
		Confidence: match.Confidence,
	}
}

// Compare scores two field values for similarity
// @Summary Compare two field values
// @Description Score two values of the same field type for similarity. The result is null when either value is missing, which is a valid outcome rather than an error.
// @Tags similarity
// @Accept json
// @Produce json
// @Param comparison body CompareRequest true "Values to compare"
// @Success 200 {object} api.APIResponse{data=CompareResponse} "Comparison outcome"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid request"
// @Router /similarity/compare [post]
func (h *SimilarityHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendBadRequest(c, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	result := matching.CalculateSimilarity(req.Value1, req.Value2, matching.FieldType(req.FieldType))
	meets := h.scanService.Thresholds().Meets(result)

	outcome := metrics.OutcomeNoMatch
	switch {
	case result == nil:
		outcome = metrics.OutcomeSkipped
	case result.IsExact:
		outcome = metrics.OutcomeExact
	case meets:
		outcome = metrics.OutcomeFuzzy
	}
	metrics.RecordComparison(req.FieldType, outcome)

	response := CompareResponse{
		MeetsThreshold: meets,
		Reason:         matching.MatchReasonLabel(result),
	}
	if result != nil {
		response.Result = &SimilarityResultResponse{
			FieldType: string(result.Type),
			Score:     result.Score,
			IsExact:   result.IsExact,
		}
	}

	api.SendSuccess(c, http.StatusOK, response, nil)
}

// ScanDuplicates scans records for likely duplicates of a candidate
// @Summary Scan for duplicates
// @Description Compare a candidate record against a list of records and return the ones that look like duplicates, strongest first, with per-field evidence.
// @Tags duplicates
// @Accept json
// @Produce json
// @Param scan body ScanRequest true "Candidate and records to scan"
// @Success 200 {object} api.APIResponse{data=[]DuplicateMatchResponse,meta=api.Meta} "Likely duplicates"
// @Failure 400 {object} api.APIResponse{error=api.APIError} "Invalid request"
// @Router /duplicates/scan [post]
func (h *SimilarityHandler) ScanDuplicates(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.SendBadRequest(c, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		api.SendValidationError(c, "Validation failed", err.Error())
		return
	}

	records := make([]service.ClientRecord, len(req.Records))
	for i, record := range req.Records {
		records[i] = recordFromRequest(record)
	}

	result := h.scanService.FindDuplicates(recordFromRequest(req.Candidate), records)
	metrics.RecordScan(result.Scanned, len(result.Matches))

	matches := make([]DuplicateMatchResponse, len(result.Matches))
	for i, match := range result.Matches {
		matches[i] = duplicateMatchToResponse(match)
	}

	meta := &api.Meta{
		Scan: &api.ScanMeta{
			Scanned: result.Scanned,
			Skipped: result.Skipped,
		},
	}
	api.SendSuccess(c, http.StatusOK, matches, meta)
}

// GetThresholds returns the active similarity thresholds
// @Summary Get similarity thresholds
// @Description Get the per-field score thresholds and composite name weights currently in use.
// @Tags similarity
// @Produce json
// @Success 200 {object} api.APIResponse{data=ThresholdsResponse} "Active thresholds"
// @Router /similarity/thresholds [get]
func (h *SimilarityHandler) GetThresholds(c *gin.Context) {
	thresholds := h.scanService.Thresholds()

	response := ThresholdsResponse{
		Email: thresholds.Email,
		Phone: thresholds.Phone,
		Name:  thresholds.Name,
		Venue: thresholds.Venue,
		NameWeights: WeightsResponse{
			Trigram:     matching.NameWeights.Trigram,
			Levenshtein: matching.NameWeights.Levenshtein,
		},
	}

	api.SendSuccess(c, http.StatusOK, response, nil)
}
