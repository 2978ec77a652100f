// Package metrics exposes Prometheus metrics for the duplicate detection
// service. All metrics register against a private registry served by
// Handler, keeping the default registry clean.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dedup"

// Comparison outcome labels.
const (
	OutcomeExact   = "exact"
	OutcomeFuzzy   = "fuzzy"
	OutcomeNoMatch = "no_match"
	OutcomeSkipped = "skipped"
)

var (
	registry = prometheus.NewRegistry()
	auto     = promauto.With(registry)

	comparisons = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Total number of field comparisons by field type and outcome",
		},
		[]string{"field_type", "outcome"},
	)

	scans = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scans_total",
		Help:      "Total number of duplicate scans",
	})

	scanRecords = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scan_records",
		Help:      "Records scanned per duplicate scan",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
	})

	scanMatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_matches_total",
		Help:      "Total number of records flagged as likely duplicates",
	})

	httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method, and status",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by route and method",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// Handler serves the private registry in Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// RecordComparison counts one field comparison.
func RecordComparison(fieldType, outcome string) {
	comparisons.WithLabelValues(fieldType, outcome).Inc()
}

// RecordScan counts one duplicate scan, its volume, and its matches.
func RecordScan(scanned, matches int) {
	scans.Inc()
	scanRecords.Observe(float64(scanned))
	scanMatches.Add(float64(matches))
}

// ObserveHTTPRequest records one completed HTTP request.
func ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}
