package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the journal writer and relay.
type Metrics struct {
	Appended            prometheus.Counter
	AppendFailures      prometheus.Counter
	Relayed             prometheus.Counter
	RelayFailures       prometheus.Counter
	CircuitBreakerSkips prometheus.Counter
	CircuitBreakerState prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Appended: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_journal_appended_total",
			Help: "Total number of events appended to the journal",
		}),
		AppendFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_journal_append_failures_total",
			Help: "Total number of journal append failures",
		}),
		Relayed: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_journal_relayed_total",
			Help: "Total number of journal events forwarded to the sink",
		}),
		RelayFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_journal_relay_failures_total",
			Help: "Total number of sink publish failures",
		}),
		CircuitBreakerSkips: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_journal_relay_skipped_total",
			Help: "Total number of relay passes skipped while the sink breaker was open",
		}),
		CircuitBreakerState: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_journal_sink_breaker_state",
			Help: "Current sink circuit breaker state (0=closed/healthy, 1=open/unhealthy)",
		}),
	}
}

func (m *Metrics) incAppended() {
	if m != nil {
		m.Appended.Inc()
	}
}

func (m *Metrics) incAppendFailures() {
	if m != nil {
		m.AppendFailures.Inc()
	}
}

func (m *Metrics) addRelayed(n int) {
	if m != nil {
		m.Relayed.Add(float64(n))
	}
}

func (m *Metrics) incRelayFailures() {
	if m != nil {
		m.RelayFailures.Inc()
	}
}

func (m *Metrics) incBreakerSkips() {
	if m != nil {
		m.CircuitBreakerSkips.Inc()
	}
}

func (m *Metrics) setBreakerState(open bool) {
	if m == nil {
		return
	}
	if open {
		m.CircuitBreakerState.Set(1)
	} else {
		m.CircuitBreakerState.Set(0)
	}
}
