// Package metrics defines and registers all custom Prometheus metrics for
// the back-office API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// LoginsTotal counts login attempts.
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

// EntityOpsTotal counts completed CRUD mutations per resource.
// Labels:
//   - resource: "products", "users", or "clients"
//   - op: "create", "update", or "delete"
var EntityOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_ops_total",
		Help:      "Total number of successful create/update/delete operations, by resource.",
	},
	[]string{"resource", "op"},
)

// ValidationRejectionsTotal counts requests rejected by a domain invariant.
// Label:
//   - rule: "cpf", "promo_price", "price", or "duplicate"
var ValidationRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Total number of requests rejected by domain validation, by rule.",
	},
	[]string{"rule"},
)

// AvatarUploadsTotal counts stored avatar images.
var AvatarUploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "avatar_uploads_total",
		Help:      "Total number of avatar images uploaded.",
	},
)
