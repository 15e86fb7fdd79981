// Package metrics defines and registers all custom Prometheus metrics
// for the order-tracking API. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ordertracking"

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - status: the initial order status ("ongoing", "completed", "cancelled")
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by initial status.",
	},
	[]string{"status"},
)

// NotificationsTotal counts real-time notification delivery attempts.
// Label:
//   - result: "sent", "failed" (write error, connection dropped) or
//     "dropped" (hub queue saturated, event discarded)
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of real-time notification sends, by result.",
	},
	[]string{"result"},
)

// ActiveConnections tracks the number of currently open notification
// stream connections across all companies.
var ActiveConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_connections",
		Help:      "Current number of open notification stream connections.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
