package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the claim ledger.
type Metrics struct {
	ClaimsSubmitted prometheus.Counter
	ClaimsDecided   *prometheus.CounterVec
	ClaimsPaid      prometheus.Counter
	PoolDeposits    prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ClaimsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_claims_submitted_total",
			Help: "Total number of claims submitted",
		}),
		ClaimsDecided: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_claims_decided_total",
			Help: "Claim decisions by outcome",
		}, []string{"outcome"}),
		ClaimsPaid: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_claims_paid_total",
			Help: "Total number of approved claims paid from the pool",
		}),
		PoolDeposits: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_claims_pool_deposits_total",
			Help: "Total number of deposits into the funding pool",
		}),
	}
}

func (m *Metrics) IncrementSubmitted() { m.ClaimsSubmitted.Inc() }

func (m *Metrics) IncrementDecided(outcome string) {
	m.ClaimsDecided.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementPaid() { m.ClaimsPaid.Inc() }

func (m *Metrics) IncrementDeposits() { m.PoolDeposits.Inc() }
