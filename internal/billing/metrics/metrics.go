package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for subscription billing.
type Metrics struct {
	CustomersRegistered prometheus.Counter
	SubscriptionsIssued prometheus.Counter
	PremiumsPaid        *prometheus.CounterVec
	AutoPayFailures     prometheus.Counter
	TreasuryWithdrawals prometheus.Counter
	AutoPaySweep        prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CustomersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_billing_customers_registered_total",
			Help: "Total number of billing customers registered",
		}),
		SubscriptionsIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_billing_subscriptions_issued_total",
			Help: "Total number of insurance subscriptions approved",
		}),
		PremiumsPaid: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_billing_premiums_paid_total",
			Help: "Premium payments by mode (manual, auto)",
		}, []string{"mode"}),
		AutoPayFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_billing_autopay_failures_total",
			Help: "Auto-pay charges declined for insufficient balance",
		}),
		TreasuryWithdrawals: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_billing_treasury_withdrawals_total",
			Help: "Total number of treasury withdrawals",
		}),
		AutoPaySweep: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_billing_autopay_sweep_duration_seconds",
			Help:    "Time taken by one auto-pay sweep",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 30},
		}),
	}
}

func (m *Metrics) IncrementCustomers() { m.CustomersRegistered.Inc() }

func (m *Metrics) IncrementSubscriptions() { m.SubscriptionsIssued.Inc() }

func (m *Metrics) IncrementPremiums(mode string) {
	m.PremiumsPaid.WithLabelValues(mode).Inc()
}

func (m *Metrics) IncrementAutoPayFailures() { m.AutoPayFailures.Inc() }

func (m *Metrics) IncrementWithdrawals() { m.TreasuryWithdrawals.Inc() }

func (m *Metrics) ObserveSweep(d time.Duration) {
	m.AutoPaySweep.Observe(d.Seconds())
}
