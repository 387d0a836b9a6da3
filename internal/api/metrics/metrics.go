// Package metrics defines all custom Prometheus metrics for the CRM API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry at init
// via promauto; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts (self-service registration
// and employer provisioning alike).
// Label:
//   - role: "employer" or "manager"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LeadsCreatedTotal counts newly created leads.
// Label:
//   - status: the initial lead status (normally "PENDING")
var LeadsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_created_total",
		Help:      "Total number of leads created, by initial status.",
	},
	[]string{"status"},
)

// LeadStatusChangesTotal counts explicit status writes on existing leads.
// Labels:
//   - status: the new status value
//   - actor: "employer" or "manager"
var LeadStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_status_changes_total",
		Help:      "Total number of lead status changes, by new status and actor role.",
	},
	[]string{"status", "actor"},
)

// ManagerDeletionsBlockedTotal counts manager deletions refused because
// leads were still assigned.
var ManagerDeletionsBlockedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "manager_deletions_blocked_total",
		Help:      "Total number of manager deletions refused due to assigned leads.",
	},
)
