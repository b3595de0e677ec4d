package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for donor screening.
type Metrics struct {
	// Screening outcomes by result (eligible, deferred)
	ScreeningOutcome *prometheus.CounterVec

	// Failed rules, one increment per reason
	RuleFailures *prometheus.CounterVec

	EvaluateLatency prometheus.Histogram

	// Coordinator report deliveries by status (sent, failed)
	ReportDeliveries *prometheus.CounterVec
}

// New registers the screening metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ScreeningOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seva_screening_outcomes_total",
			Help: "Total donor screenings by result",
		}, []string{"result"}),

		RuleFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seva_screening_rule_failures_total",
			Help: "Total eligibility rule failures by rule",
		}, []string{"rule"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "seva_screening_evaluate_duration_seconds",
			Help:    "Duration of eligibility evaluation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),

		ReportDeliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "seva_report_deliveries_total",
			Help: "Coordinator report deliveries by status",
		}, []string{"status"}),
	}
}

// IncrementOutcome records a screening result.
func (m *Metrics) IncrementOutcome(result string) {
	if m != nil {
		m.ScreeningOutcome.WithLabelValues(result).Inc()
	}
}

// IncrementRuleFailure records one failed rule.
func (m *Metrics) IncrementRuleFailure(rule string) {
	if m != nil {
		m.RuleFailures.WithLabelValues(rule).Inc()
	}
}

// ObserveEvaluateLatency records how long the rules took.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// IncrementReportDelivery records a coordinator delivery attempt.
func (m *Metrics) IncrementReportDelivery(status string) {
	if m != nil {
		m.ReportDeliveries.WithLabelValues(status).Inc()
	}
}
