package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordComparison(t *testing.T) {
	before := testutil.ToFloat64(comparisons.WithLabelValues("email", OutcomeExact))

	RecordComparison("email", OutcomeExact)
	RecordComparison("email", OutcomeExact)

	after := testutil.ToFloat64(comparisons.WithLabelValues("email", OutcomeExact))
	assert.Equal(t, before+2, after)

	// Other label combinations stay untouched.
	assert.Equal(t, 0.0, testutil.ToFloat64(comparisons.WithLabelValues("email", OutcomeNoMatch)))
}

func TestRecordScan(t *testing.T) {
	scansBefore := testutil.ToFloat64(scans)
	matchesBefore := testutil.ToFloat64(scanMatches)

	RecordScan(120, 3)

	assert.Equal(t, scansBefore+1, testutil.ToFloat64(scans))
	assert.Equal(t, matchesBefore+3, testutil.ToFloat64(scanMatches))
}

func TestObserveHTTPRequest(t *testing.T) {
	route := "/api/v1/duplicates/scan"
	before := testutil.ToFloat64(httpRequests.WithLabelValues(route, http.MethodPost, "200"))

	ObserveHTTPRequest(route, http.MethodPost, http.StatusOK, 5*time.Millisecond)

	after := testutil.ToFloat64(httpRequests.WithLabelValues(route, http.MethodPost, "200"))
	assert.Equal(t, before+1, after)
}

func TestHandlerServesRegisteredMetrics(t *testing.T) {
	RecordComparison("name", OutcomeFuzzy)
	RecordScan(10, 2)
	ObserveHTTPRequest("/api/v1/similarity/compare", http.MethodPost, http.StatusOK, 2*time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "dedup_comparisons_total")
	assert.Contains(t, body, "dedup_scans_total")
	assert.Contains(t, body, "dedup_scan_records")
	assert.Contains(t, body, "dedup_scan_matches_total")
	assert.Contains(t, body, "dedup_http_requests_total")
	assert.Contains(t, body, "dedup_http_request_duration_seconds")
}
