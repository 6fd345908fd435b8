// Package observability registers application-level Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookery_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// AlertFanoutTotal counts alert rows written, labeled by alert type.
	AlertFanoutTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookery_alert_fanout_total",
		Help: "Total number of alert rows written by alert type",
	}, []string{"type"})

	// AlertFanoutFailures counts fan-out batches that failed to write.
	// Fan-out is best-effort, so these never surface to the caller.
	AlertFanoutFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookery_alert_fanout_failures_total",
		Help: "Total number of failed alert fan-out batches by alert type",
	}, []string{"type"})

	// CheckoutsTotal counts completed checkouts.
	CheckoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookery_checkouts_total",
		Help: "Total number of completed checkouts",
	})
)
