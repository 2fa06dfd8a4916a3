package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the treasury-level Prometheus metrics. HTTP request metrics
// live in the router middleware; these cover the business operations.
type Metrics struct {
	// Ledger metrics
	TransactionsCreated prometheus.Counter
	TransactionsDeleted prometheus.Counter
	MovementsApplied    prometheus.Counter
	MovementsReversed   prometheus.Counter
	TransactionAmount   prometheus.Histogram

	// Treasury metrics
	PoolBalance   *prometheus.GaugeVec
	GlobalBalance prometheus.Gauge
	ManualEdits   prometheus.Counter

	// Authentication metrics
	AuthAttempts   *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
	SessionsLocked prometheus.Counter

	// Audit metrics
	AuditEntriesCreated *prometheus.CounterVec
	AuditEntriesDropped prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransactionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasuryd_transactions_created_total",
			Help: "Total number of ledger transactions created",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasuryd_transactions_deleted_total",
			Help: "Total number of ledger transactions deleted",
		}),
		MovementsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasuryd_movements_applied_total",
			Help: "Total number of fund movements applied on approval",
		}),
		MovementsReversed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasuryd_movements_reversed_total",
			Help: "Total number of fund movements reversed",
		}),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "treasuryd_transaction_amount",
			Help:    "Absolute transaction amounts",
			Buckets: []float64{10, 100, 1000, 10000, 100000, 1000000},
		}),

		PoolBalance: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "treasuryd_pool_balance",
				Help: "Current balance per asset pool",
			},
			[]string{"pool"},
		),
		GlobalBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "treasuryd_global_balance",
			Help: "Current global treasury balance",
		}),
		ManualEdits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasuryd_manual_edits_total",
			Help: "Total number of manual balance edits",
		}),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasuryd_auth_attempts_total",
				Help: "Total PIN verification attempts",
			},
			[]string{"status"},
		),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "treasuryd_active_sessions",
			Help: "Current number of active sessions",
		}),
		SessionsLocked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasuryd_sessions_locked_total",
			Help: "Total sessions locked after inactivity",
		}),

		AuditEntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasuryd_audit_entries_total",
				Help: "Total audit entries created by action",
			},
			[]string{"action"},
		),
		AuditEntriesDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasuryd_audit_entries_dropped_total",
			Help: "Total audit entries dropped due to storage failures",
		}),
	}
}
