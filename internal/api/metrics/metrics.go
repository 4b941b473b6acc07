// Package metrics defines and registers all custom Prometheus metrics for the
// SmartFix inspection API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smartfix"

// ── Inspection metrics ────────────────────────────────────────────────────────

// InspectionsTotal counts inspections that completed and were recorded.
// Label:
//   - result: "OK" or "NOK"
var InspectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inspections_total",
		Help:      "Total number of inspection records appended, by classification result.",
	},
	[]string{"result"},
)

// InspectionErrorsTotal counts submissions that failed before a record was
// appended.
// Label:
//   - reason: "validation", "image_decode", "no_model", "model", "storage"
var InspectionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inspection_errors_total",
		Help:      "Total number of failed inspection submissions, by reason.",
	},
	[]string{"reason"},
)

// ClassificationDuration measures the end-to-end time of one submission,
// upload to persisted record.
var ClassificationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "classification_duration_seconds",
		Help:      "Duration of an inspection submission from receipt to persistence.",
		Buckets:   prometheus.DefBuckets, // .005 … 10
	},
)

// ── Model metrics ─────────────────────────────────────────────────────────────

// ModelReloadsTotal counts model replacement attempts.
// Label:
//   - result: "success" or "rejected"
var ModelReloadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "model_reloads_total",
		Help:      "Total number of classifier model reload attempts, by outcome.",
	},
	[]string{"result"},
)

// ── Export metrics ────────────────────────────────────────────────────────────

// ExportsTotal counts CSV history exports.
var ExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of CSV history exports served.",
	},
)
