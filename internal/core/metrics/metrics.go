package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fincalc"

// Outcome labels a finished calculation.
type Outcome string

const (
	OutcomeComputed  Outcome = "computed"
	OutcomeCached    Outcome = "cached"
	OutcomeNonFinite Outcome = "non_finite"
)

type Calculations struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCalculations registers the calculation collectors on reg.
func NewCalculations(reg prometheus.Registerer) (*Calculations, error) {
	m := &Calculations{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Calculations served, by scenario and outcome.",
		}, []string{"scenario", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Time spent producing a calculation result, cache lookups included.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"scenario"}),
	}

	for _, c := range []prometheus.Collector{m.total, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Calculations) Observe(scenario string, outcome Outcome, elapsed time.Duration) {
	m.total.WithLabelValues(scenario, string(outcome)).Inc()
	m.duration.WithLabelValues(scenario).Observe(elapsed.Seconds())
}
