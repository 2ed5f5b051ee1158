// Package metrics defines the Prometheus collectors for the orchestration
// core. All collectors are registered on the default registry and exposed
// via GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event bus collectors.
var (
	EventsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_bus_events_emitted_total",
		Help: "Events emitted on the bus.",
	}, []string{"event_type", "source"})

	EventsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_bus_events_delivered_total",
		Help: "Events delivered to subscribers.",
	}, []string{"event_type"})

	SubscriberErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_bus_subscriber_errors_total",
		Help: "Subscriber callback failures. Never affects the emitter.",
	}, []string{"event_type", "callback_name"})
)

// Agent request/response collectors.
var (
	AgentRequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agent_request_latency_seconds",
		Help:    "End-to-end latency of agent request/response calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"source_agent", "target_agent", "request_type"})

	AgentRequestsActive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "agent_requests_active",
		Help: "Outstanding agent requests.",
	}, []string{"source_agent", "target_agent"})

	AgentRequestTimeouts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_request_timeouts_total",
		Help: "Agent requests that exceeded their deadline.",
	}, []string{"source_agent", "target_agent"})
)

// Resource lock collectors.
var (
	LockAcquisitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resource_lock_acquisitions_total",
		Help: "Successful lock acquisitions.",
	}, []string{"resource_type", "agent_id"})

	LockWaitTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "resource_lock_wait_time_seconds",
		Help:    "Time spent waiting before a lock resolved.",
		Buckets: []float64{.005, .05, .25, 1, 5, 15, 60, 300},
	}, []string{"resource_type", "agent_id"})

	LocksActive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "resource_locks_active",
		Help: "Currently held locks.",
	}, []string{"resource_type"})

	LockContentions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resource_lock_contentions_total",
		Help: "Acquisition attempts that found the lock held by another agent.",
	}, []string{"resource_type", "agent_id"})
)

// ResourceType extracts the metric label from a resource id. Resource ids
// follow the "type:name" convention (e.g. "infrastructure:production");
// ids without a type prefix fall into "other".
func ResourceType(resourceID string) string {
	for i := 0; i < len(resourceID); i++ {
		if resourceID[i] == ':' {
			return resourceID[:i]
		}
	}
	return "other"
}
