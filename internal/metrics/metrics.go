package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quickcamp"

var (
	// RemoteRequestDuration tracks every network attempt made on behalf of
	// a session, replays included.
	RemoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_request_duration_seconds",
			Help:      "Duration of outbound requests to the campaign services in seconds",
			Buckets: []float64{
				0.01, // 10ms
				0.05, // 50ms
				0.1,  // 100ms
				0.25, // 250ms
				0.5,  // 500ms
				1.0,  // 1s
				2.5,  // 2.5s
				5.0,  // 5s
				10.0, // 10s
				30.0, // 30s
			},
		},
		[]string{"attempt", "status"},
	)

	CredentialRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credential_refreshes_total",
			Help:      "Access credential refreshes by outcome",
		},
		[]string{"outcome"}, // success, failure, missing
	)

	Mutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Configuration mutations by field and outcome",
		},
		[]string{"field", "outcome"},
	)

	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Campaign submissions by outcome",
		},
		[]string{"outcome"},
	)

	ReferenceFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reference_fallbacks_total",
			Help:      "Reference lookups served from the cache or empty after a failure",
		},
		[]string{"kind", "source"}, // source: cache or empty
	)
)

// RecordRemoteRequest records the duration of one outbound attempt. A zero
// status means the attempt failed before a response was received.
func RecordRemoteRequest(attempt string, status int, d time.Duration) {
	label := "error"
	if status > 0 {
		label = http.StatusText(status)
		if label == "" {
			label = "unknown"
		}
	}
	RemoteRequestDuration.WithLabelValues(attempt, label).Observe(d.Seconds())
}

func RecordRefresh(outcome string) {
	CredentialRefreshes.WithLabelValues(outcome).Inc()
}

func RecordMutation(field, outcome string) {
	Mutations.WithLabelValues(field, outcome).Inc()
}

func RecordSubmission(outcome string) {
	Submissions.WithLabelValues(outcome).Inc()
}

func RecordReferenceFallback(kind, source string) {
	ReferenceFallbacks.WithLabelValues(kind, source).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
