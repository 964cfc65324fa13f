package adapters

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
)

// prometheusMetrics implements the adapter.MetricsRecorder interface.
type prometheusMetrics struct {
	remoteCalls          *prometheus.CounterVec
	remoteCallDuration   *prometheus.HistogramVec
	editWindowViolations *prometheus.CounterVec
	duplicateSubmissions *prometheus.CounterVec
	syncsTotal           *prometheus.CounterVec
	ledgerTransactions   prometheus.Gauge
	ledgerAccounts       prometheus.Gauge
}

// NewPrometheusMetrics registers the ledger metrics with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) adapter.MetricsRecorder {
	factory := promauto.With(reg)
	return &prometheusMetrics{
		remoteCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_remote_calls_total",
				Help: "Total number of requests sent to the ledger service",
			},
			[]string{"operation", "status"},
		),
		remoteCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_remote_call_duration_seconds",
				Help:    "Ledger service request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		editWindowViolations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_edit_window_violations_total",
				Help: "Total number of updates and deletes rejected because the edit window had closed",
			},
			[]string{"operation"},
		),
		duplicateSubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_duplicate_submissions_total",
				Help: "Total number of mutations refused while an identical one was in flight",
			},
			[]string{"operation"},
		),
		syncsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_syncs_total",
				Help: "Total number of completed syncs by outcome",
			},
			[]string{"result"},
		),
		ledgerTransactions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_transactions",
				Help: "Number of transactions in the last applied sync",
			},
		),
		ledgerAccounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_accounts",
				Help: "Number of accounts in the last applied sync",
			},
		),
	}
}

func (m *prometheusMetrics) RecordRemoteCall(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.remoteCalls.WithLabelValues(operation, status).Inc()
	m.remoteCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *prometheusMetrics) RecordEditWindowViolation(operation string) {
	m.editWindowViolations.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordDuplicateSubmission(operation string) {
	m.duplicateSubmissions.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordSync(applied bool, transactions, accounts int) {
	if !applied {
		m.syncsTotal.WithLabelValues("stale").Inc()
		return
	}
	m.syncsTotal.WithLabelValues("applied").Inc()
	m.ledgerTransactions.Set(float64(transactions))
	m.ledgerAccounts.Set(float64(accounts))
}
