// Package metrics provides Prometheus metrics for the lookup service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup kinds used as the "kind" label.
const (
	KindOpenings   = "openings"
	KindCandidates = "candidates"
)

// Metrics contains the lookup service metrics.
type Metrics struct {
	LookupsTotal          *prometheus.CounterVec   // by kind and status
	LookupDurationSeconds *prometheus.HistogramVec // by kind, includes simulated latency
	MatchesReturned       *prometheus.HistogramVec // by kind, successful lookups only
	SessionsInFlight      prometheus.Gauge
	BatchQueries          prometheus.Histogram
}

// New creates a Metrics instance registered with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the metrics with reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration panics.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LookupsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "concursos_lookups_total",
			Help: "Total number of lookups by kind and outcome status",
		}, []string{"kind", "status"}),

		LookupDurationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "concursos_lookup_duration_seconds",
			Help:    "Duration of lookups by kind, including simulated latency",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 0.75, 1, 2},
		}, []string{"kind"}),

		MatchesReturned: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "concursos_lookup_matches",
			Help:    "Number of matches returned by successful lookups",
			Buckets: []float64{1, 2, 5, 10, 25, 50},
		}, []string{"kind"}),

		SessionsInFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "concursos_sessions_in_flight",
			Help: "Number of lookup sessions currently busy",
		}),

		BatchQueries: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "concursos_batch_queries",
			Help:    "Number of queries per batch lookup",
			Buckets: []float64{1, 2, 5, 10, 20},
		}),
	}
}

// RecordLookup records a completed lookup.
func (m *Metrics) RecordLookup(kind, status string, durationSeconds float64, matches int) {
	m.LookupsTotal.WithLabelValues(kind, status).Inc()
	m.LookupDurationSeconds.WithLabelValues(kind).Observe(durationSeconds)
	if matches > 0 {
		m.MatchesReturned.WithLabelValues(kind).Observe(float64(matches))
	}
}

// SessionStarted marks a session as busy.
func (m *Metrics) SessionStarted() {
	m.SessionsInFlight.Inc()
}

// SessionFinished marks a session as idle again.
func (m *Metrics) SessionFinished() {
	m.SessionsInFlight.Dec()
}

// ObserveBatch records the size of a batch lookup.
func (m *Metrics) ObserveBatch(queries int) {
	m.BatchQueries.Observe(float64(queries))
}
