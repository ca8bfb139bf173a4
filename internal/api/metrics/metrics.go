// Package metrics defines and registers all custom Prometheus metrics for the
// order board. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orderboard"

// ClientsCreatedTotal counts clients added to the roster.
var ClientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of clients added to the roster.",
	},
)

// ClientsDeletedTotal counts clients removed from the roster.
var ClientsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_deleted_total",
		Help:      "Total number of clients removed from the roster.",
	},
)

// QuantityUpdatesTotal counts applied quantity changes.
// Label:
//   - direction: "up" (increment) or "down" (decrement)
var QuantityUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quantity_updates_total",
		Help:      "Total number of order quantity changes, by direction.",
	},
	[]string{"direction"},
)

// ReportsGeneratedTotal counts exported order reports.
var ReportsGeneratedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of order reports generated.",
	},
)

// ReportGenerationDuration measures how long a report takes to render.
var ReportGenerationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_generation_duration_seconds",
		Help:      "Duration of order report rendering.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
