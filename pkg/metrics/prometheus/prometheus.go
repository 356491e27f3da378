package prometheus

import (
	"github.com/amirasaad/ledgerdesk/pkg/metrics"
	"github.com/amirasaad/ledgerdesk/pkg/money"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements metrics.Collector for Prometheus.
type PrometheusCollector struct {
	namespace string

	// Counters
	accountsOpened *prometheus.CounterVec
	operations     *prometheus.CounterVec
	amounts        *prometheus.CounterVec
	rejected       *prometheus.CounterVec

	// Gauges
	accounts prometheus.Gauge

	// Histograms
	amountSize *prometheus.HistogramVec
}

// NewPrometheusCollector creates a new Prometheus metrics collector and
// registers it with reg.
func NewPrometheusCollector(namespace string, reg prometheus.Registerer) (*PrometheusCollector, error) {
	pc := &PrometheusCollector{
		namespace: namespace,
		accountsOpened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_opened_total",
				Help:      "Total number of accounts opened per account type",
			},
			[]string{"type"},
		),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_total",
				Help:      "Total number of successful balance changes per kind",
			},
			[]string{"kind"},
		),
		amounts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transaction_amount_total",
				Help:      "Sum of transaction amounts in the main currency unit per kind and currency",
			},
			[]string{"kind", "currency"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejected_operations_total",
				Help:      "Total number of rejected operations per operation and reason",
			},
			[]string{"operation", "reason"},
		),
		accounts: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "accounts",
				Help:      "Current number of accounts in the ledger",
			},
		),
		amountSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transaction_amount",
				Help:      "Distribution of transaction amounts in the main currency unit",
				Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"kind"},
		),
	}

	for _, c := range []prometheus.Collector{
		pc.accountsOpened,
		pc.operations,
		pc.amounts,
		pc.rejected,
		pc.accounts,
		pc.amountSize,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return pc, nil
}

// RecordAccountOpened counts a new account.
func (pc *PrometheusCollector) RecordAccountOpened(accountType string) {
	pc.accountsOpened.WithLabelValues(accountType).Inc()
	pc.accounts.Inc()
}

// RecordDeposit counts a deposit and its amount.
func (pc *PrometheusCollector) RecordDeposit(amount money.Money) {
	pc.record("deposit", amount)
}

// RecordWithdrawal counts a withdrawal and its amount.
func (pc *PrometheusCollector) RecordWithdrawal(amount money.Money) {
	pc.record("withdrawal", amount)
}

// RecordRejected counts a rejected operation.
func (pc *PrometheusCollector) RecordRejected(operation, reason string) {
	pc.rejected.WithLabelValues(operation, reason).Inc()
}

func (pc *PrometheusCollector) record(kind string, amount money.Money) {
	v := amount.Decimal().InexactFloat64()
	pc.operations.WithLabelValues(kind).Inc()
	pc.amounts.WithLabelValues(kind, amount.CurrencyCode().String()).Add(v)
	pc.amountSize.WithLabelValues(kind).Observe(v)
}

var _ metrics.Collector = (*PrometheusCollector)(nil)
