package quakerisk

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by an Engine.
type Metrics struct {
	EventsClassified     *prometheus.CounterVec // labels: kind={land,ocean}
	ClassifyDuration     prometheus.Histogram
	RegionsLoaded        prometheus.Gauge
	SelectionTransitions *prometheus.CounterVec // labels: transition={focus_event,focus_city,deselect,noop}
}

// NewMetrics creates the engine collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer in services and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakerisk",
			Name:      "events_classified_total",
			Help:      "Events classified, by outcome.",
		}, []string{"kind"}),
		ClassifyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quakerisk",
			Name:      "classify_duration_seconds",
			Help:      "Duration of a full classification and aggregation pass.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		RegionsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quakerisk",
			Name:      "regions_loaded",
			Help:      "Number of regions held by the engine.",
		}),
		SelectionTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quakerisk",
			Name:      "selection_transitions_total",
			Help:      "Selection actions, by resulting transition.",
		}, []string{"transition"}),
	}

	reg.MustRegister(
		m.EventsClassified,
		m.ClassifyDuration,
		m.RegionsLoaded,
		m.SelectionTransitions,
	)
	return m
}
