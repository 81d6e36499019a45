// Package metrics defines and registers all custom Prometheus metrics for the
// Wild Wall API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// package load; the /metrics endpoint is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wildwall"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts session token checks by the extractor middleware.
// Label:
//   - result: "ok", "expired", "invalid", or "missing"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// AuthzDenialsTotal counts authorization denials.
// Label:
//   - action: the policy action that was denied (e.g. "post.delete")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of authorization denials, by policy action.",
	},
	[]string{"action"},
)

// ── Wall metrics ──────────────────────────────────────────────────────────────

// PostsCreatedTotal counts new sticky notes.
// Label:
//   - color: the note's color code
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts pinned to the wall, by color.",
	},
	[]string{"color"},
)
