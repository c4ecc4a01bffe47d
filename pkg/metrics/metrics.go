package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load outcomes used as the "outcome" label.
const (
	OutcomeLoaded      = "loaded"
	OutcomeNotFound    = "not_found"
	OutcomeUnsupported = "unsupported"
	OutcomeParseError  = "parse_error"
	OutcomeReadError   = "read_error"
)

// Metrics for fixture loading and validation.
// Using promauto for automatic registration with default registry.
var (
	// --- Loader Metrics ---

	// FixturesLoaded counts load attempts by format and outcome.
	FixturesLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "batchmock",
			Subsystem: "fixtures",
			Name:      "loaded_total",
			Help:      "Total number of fixture load attempts by format and outcome",
		},
		[]string{"format", "outcome"},
	)

	// LoadDuration tracks how long a fixture read and decode takes.
	LoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "batchmock",
			Subsystem: "fixtures",
			Name:      "load_duration_seconds",
			Help:      "Duration of fixture loads in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 100µs to ~200ms
		},
		[]string{"format"},
	)

	// --- Validator Metrics ---

	// ValidationsTotal counts verdicts by policy and status.
	ValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "batchmock",
			Subsystem: "validations",
			Name:      "total",
			Help:      "Total number of validations by policy and resulting status",
		},
		[]string{"policy", "status"},
	)
)

// RecordLoad records a finished load attempt.
func RecordLoad(format, outcome string, durationSeconds float64) {
	FixturesLoaded.WithLabelValues(format, outcome).Inc()
	if outcome == OutcomeLoaded {
		LoadDuration.WithLabelValues(format).Observe(durationSeconds)
	}
}

// RecordValidation records a verdict.
func RecordValidation(policy, status string) {
	ValidationsTotal.WithLabelValues(policy, status).Inc()
}
