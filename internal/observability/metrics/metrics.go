// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "medbot_client"

// Metrics holds all Prometheus metrics for the client.
type Metrics struct {
	// Voice session metrics
	SessionsTotal   prometheus.Counter
	SessionsActive  prometheus.Gauge
	SessionDuration prometheus.Histogram

	// Transcript merge metrics
	MergesRecomputed prometheus.Counter
	SegmentsObserved *prometheus.CounterVec

	// Persistence metrics
	MessagesPersisted *prometheus.CounterVec
	PersistFailures   *prometheus.CounterVec
	PersistSkipped    *prometheus.CounterVec

	// Realtime feed metrics
	FeedEvents *prometheus.CounterVec

	// Backend API metrics
	APIRequests  *prometheus.CounterVec
	APILatency   *prometheus.HistogramVec
	APIAuthFails prometheus.Counter
}

// Skip reasons for PersistSkipped.
const (
	SkipNotFinal       = "not_final"
	SkipEmptyText      = "empty_text"
	SkipDuplicate      = "duplicate"
	SkipNoConversation = "no_conversation"
)

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		SessionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voice_sessions_total",
			Help:      "Total number of voice sessions started",
		}),
		SessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "voice_sessions_active",
			Help:      "Number of currently connected voice sessions",
		}),
		SessionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "voice_session_duration_seconds",
			Help:      "Duration of voice sessions in seconds",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}),

		MergesRecomputed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcript_merges_total",
			Help:      "Total number of transcript merge recomputations",
		}),
		SegmentsObserved: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcript_segments_observed_total",
			Help:      "Total number of segments seen by the persistence pass",
		}, []string{"role"}),

		MessagesPersisted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_persisted_total",
			Help:      "Total number of finalized segments written to the backend",
		}, []string{"role"}),
		PersistFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Total number of failed message writes",
		}, []string{"role"}),
		PersistSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_skipped_total",
			Help:      "Total number of segments skipped by the persistence pass",
		}, []string{"reason"}),

		FeedEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_events_total",
			Help:      "Total number of realtime feed events received",
		}, []string{"type"}),

		APIRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of backend API requests",
		}, []string{"operation", "status"}),
		APILatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_latency_seconds",
			Help:      "Backend API request latency in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),
		APIAuthFails: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_auth_failures_total",
			Help:      "Total number of backend requests rejected with 401/403",
		}),
	}
}

// RecordSessionStart records a new voice session starting.
func (m *Metrics) RecordSessionStart() {
	m.SessionsTotal.Inc()
	m.SessionsActive.Inc()
}

// RecordSessionEnd records a voice session ending.
func (m *Metrics) RecordSessionEnd(durationSeconds float64) {
	m.SessionsActive.Dec()
	m.SessionDuration.Observe(durationSeconds)
}

// RecordMerge records one recomputation of the merged transcript view.
func (m *Metrics) RecordMerge() {
	m.MergesRecomputed.Inc()
}

// RecordSegmentObserved records a segment passing through the persistence pass.
func (m *Metrics) RecordSegmentObserved(role string) {
	m.SegmentsObserved.WithLabelValues(role).Inc()
}

// RecordMessagePersisted records a successful backend message write.
func (m *Metrics) RecordMessagePersisted(role string) {
	m.MessagesPersisted.WithLabelValues(role).Inc()
}

// RecordPersistFailure records a failed backend message write.
func (m *Metrics) RecordPersistFailure(role string) {
	m.PersistFailures.WithLabelValues(role).Inc()
}

// RecordPersistSkipped records a segment skipped by the persistence pass.
func (m *Metrics) RecordPersistSkipped(reason string) {
	m.PersistSkipped.WithLabelValues(reason).Inc()
}

// RecordFeedEvent records a realtime feed event by type.
func (m *Metrics) RecordFeedEvent(eventType string) {
	m.FeedEvents.WithLabelValues(eventType).Inc()
}

// RecordAPIRequest records a backend API request outcome.
func (m *Metrics) RecordAPIRequest(operation, status string, latencySeconds float64) {
	m.APIRequests.WithLabelValues(operation, status).Inc()
	m.APILatency.WithLabelValues(operation).Observe(latencySeconds)
}

// RecordAuthFailure records a 401/403 from the backend.
func (m *Metrics) RecordAuthFailure() {
	m.APIAuthFails.Inc()
}
