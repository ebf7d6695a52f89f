// Package metrics defines and registers all custom Prometheus metrics for
// the timeclock API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timeclock"

// ── Clock transition metrics ─────────────────────────────────────────────────

// ShiftsStartedTotal counts successfully opened work shifts.
var ShiftsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shifts_started_total",
		Help:      "Total number of work shifts started.",
	},
)

// ShiftsEndedTotal counts successfully closed work shifts.
var ShiftsEndedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shifts_ended_total",
		Help:      "Total number of work shifts ended.",
	},
)

// BreaksStartedTotal counts successfully opened breaks.
// Label:
//   - break_type: "Break" (short break) or "Lunch"
var BreaksStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "breaks_started_total",
		Help:      "Total number of breaks started, by break type.",
	},
	[]string{"break_type"},
)

// BreaksEndedTotal counts successfully closed breaks.
// Label:
//   - break_type: type of the break that was closed
var BreaksEndedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "breaks_ended_total",
		Help:      "Total number of breaks ended, by break type.",
	},
	[]string{"break_type"},
)

// TransitionsRejectedTotal counts state-machine precondition failures.
// Label:
//   - reason: "shift_in_progress", "shift_not_started", "break_in_progress",
//     or "break_not_started"
var TransitionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_rejected_total",
		Help:      "Total number of shift/break transitions rejected by a precondition.",
	},
	[]string{"reason"},
)

// ── Report metrics ───────────────────────────────────────────────────────────

// ReportQueriesTotal counts activity-report queries.
// Label:
//   - result: "ok", "denied", or "not_found"
var ReportQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_queries_total",
		Help:      "Total number of activity report queries, by result.",
	},
	[]string{"result"},
)

// ReportUsersReturned measures how many users each report returned.
var ReportUsersReturned = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_users_returned",
		Help:      "Number of users returned per activity report.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
	},
)
