// Package metrics defines the custom Prometheus metrics of the Hobbie
// backend. HTTP request metrics come from echoprometheus; everything here
// describes security decisions.
//
// All metrics register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hobbie"

// ── Authentication ───────────────────────────────────────────────────────────

// LoginsTotal counts password logins.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of password login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts accounts created through the signup endpoints.
// Label:
//   - kind: "USER" or "BUSINESS_USER"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered accounts, by account kind.",
	},
	[]string{"kind"},
)

// TokenValidationsTotal counts bearer token checks on protected routes.
// Label:
//   - result: "valid", "missing", "malformed", "signature_invalid" or "expired"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by result.",
	},
	[]string{"result"},
)

// ── Authorization ────────────────────────────────────────────────────────────

// AuthorizationDenialsTotal counts requests stopped after authentication.
// Label:
//   - reason: "role" (policy) or "owner" (ownership check)
var AuthorizationDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denials_total",
		Help:      "Total number of requests denied by role or ownership rules.",
	},
	[]string{"reason"},
)

// ── Federated login ──────────────────────────────────────────────────────────

// FederatedLoginsTotal counts identity provider callbacks.
// Label:
//   - outcome: "existing", "provisioned", "invalid_state" or "failed"
var FederatedLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "federated_logins_total",
		Help:      "Total number of federated login callbacks, by outcome.",
	},
	[]string{"outcome"},
)

// ── Background work ──────────────────────────────────────────────────────────

// CleanupQueueDepth tracks pending object deletions per worker.
// Label:
//   - worker_id: numeric worker index
var CleanupQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cleanup_queue_depth",
		Help:      "Current number of object deletions pending in each cleanup worker.",
	},
	[]string{"worker_id"},
)

// CleanupFailuresTotal counts object deletions that failed.
var CleanupFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cleanup_failures_total",
		Help:      "Total number of stored objects that could not be deleted.",
	},
)
