// Package metrics defines and registers all custom Prometheus metrics for the
// portal gateway. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Upstream client metrics ───────────────────────────────────────────────────

// UpstreamRequestsTotal counts completed upstream calls.
// Labels:
//   - endpoint: logical endpoint name (e.g. "login", "list_users")
//   - outcome: "success", "error", or "unauthorized"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream API calls, labelled by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamRetriesTotal counts cold-start retries: a 5xx answer that was
// followed by another attempt.
// Label:
//   - endpoint: logical endpoint name
var UpstreamRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_retries_total",
		Help:      "Total number of upstream retries triggered by cold-start 5xx responses.",
	},
	[]string{"endpoint"},
)

// UpstreamRequestDuration measures a full upstream call, retries and retry
// delays included.
// Label:
//   - endpoint: logical endpoint name
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream API calls from first attempt to final outcome.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts through the session service.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionInvalidationsTotal counts sessions cleared after an
// authentication-rejected upstream response (distinct from explicit logouts).
var SessionInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of sessions cleared due to upstream 401 responses.",
	},
)
