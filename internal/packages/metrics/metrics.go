package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Requests  prometheus.Counter
	Decisions *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_packages_requests_total",
			Help: "Total number of package subscription requests",
		}),
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_packages_decisions_total",
			Help: "Package request outcomes (approved, cancelled, rejected)",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncrementRequests() { m.Requests.Inc() }

func (m *Metrics) IncrementDecisions(outcome string) {
	m.Decisions.WithLabelValues(outcome).Inc()
}
