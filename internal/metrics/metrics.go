package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Registry *prometheus.Registry

	RequirementsResolved *prometheus.CounterVec
	UncoveredCombination *prometheus.CounterVec
	StepSubmissions      *prometheus.CounterVec
	CatalogFetches       *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
}

// New registers the intake collectors on a fresh registry so tests and the
// server never collide on the global one.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RequirementsResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_requirements_resolved_total",
			Help: "Requirement lists resolved from survey answers",
		}, []string{"visa_type", "procedure_type"}),
		UncoveredCombination: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_uncovered_combinations_total",
			Help: "Survey answers with no catalog entry, resolved to zero documents",
		}, []string{"visa_type", "procedure_type"}),
		StepSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_step_submissions_total",
			Help: "Wizard step submissions by outcome",
		}, []string{"step_id", "outcome"}),
		CatalogFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_catalog_fetches_total",
			Help: "Remote requirement catalog fetches by result",
		}, []string{"result"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "intake_request_duration_seconds",
			Help:    "Duration of API requests",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"path"}),
	}
}

func (m *Metrics) IncrementResolved(visaType, procedureType string) {
	m.RequirementsResolved.WithLabelValues(visaType, procedureType).Inc()
}

func (m *Metrics) IncrementUncovered(visaType, procedureType string) {
	m.UncoveredCombination.WithLabelValues(visaType, procedureType).Inc()
}

func (m *Metrics) IncrementSubmission(stepID, outcome string) {
	m.StepSubmissions.WithLabelValues(stepID, outcome).Inc()
}

func (m *Metrics) IncrementCatalogFetch(result string) {
	m.CatalogFetches.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRequest(path string, start time.Time) {
	m.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
}
