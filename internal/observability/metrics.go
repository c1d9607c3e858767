package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DeleteDecisions counts delete authorization outcomes by resource kind and decision.
	DeleteDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dwitter_delete_decisions_total",
		Help: "Delete authorization decisions by resource kind and outcome",
	}, []string{"kind", "outcome"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dwitter_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// EventsPublished counts realtime events published by type and result.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dwitter_events_published_total",
		Help: "Realtime events published by type and result",
	}, []string{"event_type", "result"})
)

// RecordDeleteDecision increments the decision counter.
func RecordDeleteDecision(kind, outcome string) {
	DeleteDecisions.WithLabelValues(kind, outcome).Inc()
}
