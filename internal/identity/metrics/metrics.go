package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the identity registry.
type Metrics struct {
	UsersRegistered prometheus.Counter
	SignIns         *prometheus.CounterVec
	AdminChanges    *prometheus.CounterVec
	SignInDuration  prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_identity_users_registered_total",
			Help: "Total number of user profiles registered",
		}),
		SignIns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_identity_sign_ins_total",
			Help: "Sign-in attempts by role and outcome",
		}, []string{"role", "outcome"}),
		AdminChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_identity_admin_changes_total",
			Help: "Admin roster changes by kind",
		}, []string{"kind"}),
		SignInDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_identity_sign_in_duration_seconds",
			Help:    "Duration of SignIn operations (dominated by bcrypt)",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementUsersRegistered() {
	m.UsersRegistered.Inc()
}

func (m *Metrics) IncrementSignIn(role, outcome string) {
	m.SignIns.WithLabelValues(role, outcome).Inc()
}

func (m *Metrics) IncrementAdminChange(kind string) {
	m.AdminChanges.WithLabelValues(kind).Inc()
}

// ObserveSignIn records the duration of a SignIn operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSignIn(start time.Time) {
	m.SignInDuration.Observe(time.Since(start).Seconds())
}
