package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the policy catalog.
type Metrics struct {
	PoliciesCreated prometheus.Counter
	PoliciesUpdated *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PoliciesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_policy_created_total",
			Help: "Total number of catalog policies created",
		}),
		PoliciesUpdated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_policy_updated_total",
			Help: "Policy updates, labelled by whether the active flag flipped",
		}, []string{"transition"}),
	}
}

func (m *Metrics) IncrementCreated() {
	m.PoliciesCreated.Inc()
}

// IncrementUpdated records an update. transition is "archived", "activated" or "none".
func (m *Metrics) IncrementUpdated(transition string) {
	m.PoliciesUpdated.WithLabelValues(transition).Inc()
}
