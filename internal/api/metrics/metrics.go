// Package metrics defines and registers all custom Prometheus metrics for
// the events API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "events_api"

// ── CRM gateway metrics ───────────────────────────────────────────────────────

// CRMRequestsTotal counts outbound CRM calls.
// Labels:
//   - resource: leading path segment of the Apex resource ("users", "events", "attendees")
//   - method: HTTP method of the outbound call
//   - outcome: "success", "failure" (non-success envelope), "unauthorized",
//     "transport_error", or "bad_envelope"
var CRMRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "crm_requests_total",
		Help:      "Total number of outbound CRM calls, by resource, method, and outcome.",
	},
	[]string{"resource", "method", "outcome"},
)

// CRMRequestDuration measures outbound CRM call latency.
// Label:
//   - resource: leading path segment of the Apex resource
var CRMRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "crm_request_duration_seconds",
		Help:      "Duration of outbound CRM calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts session tokens issued.
// Label:
//   - flow: "register" or "login"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued, by flow.",
	},
	[]string{"flow"},
)

// ── Registration metrics ──────────────────────────────────────────────────────

// RegistrationsTotal counts attendee registration outcomes.
// Label:
//   - outcome: "confirmed" or "cancelled"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of attendee registrations, by outcome.",
	},
	[]string{"outcome"},
)
