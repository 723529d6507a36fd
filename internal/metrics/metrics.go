// AngelaMos | 2026
// metrics.go

// Package metrics holds the Prometheus collectors exposed on /metrics.
// Collectors register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campus"

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/courses/{id}"), "unmatched" otherwise
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures handler latency by route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// AuthEventsTotal counts authentication outcomes.
// Labels:
//   - event: "register", "login", "logout" or "verify"
//   - outcome: "success" or a short failure reason (e.g. "invalid_credentials", "expired")
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication events, by event and outcome.",
	},
	[]string{"event", "outcome"},
)

// RecordWritesTotal counts successful resource mutations.
// Labels:
//   - resource: "product", "course", "student" or "enrollment"
//   - operation: "create", "update" or "delete"
var RecordWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_writes_total",
		Help:      "Total number of resource writes, by resource and operation.",
	},
	[]string{"resource", "operation"},
)

// RateLimitedTotal counts requests rejected by a rate limiter.
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by rate limiting, by limiter.",
	},
	[]string{"limiter"},
)

func AuthEvent(event, outcome string) {
	AuthEventsTotal.WithLabelValues(event, outcome).Inc()
}

func RecordWrite(resource, operation string) {
	RecordWritesTotal.WithLabelValues(resource, operation).Inc()
}
