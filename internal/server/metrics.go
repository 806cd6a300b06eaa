package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors exposed by the service.
type Metrics struct {
	Uploads       *prometheus.CounterVec
	Solves        *prometheus.CounterVec
	SolveDuration prometheus.Histogram
}

// NewMetrics registers the service collectors with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathserve_graph_uploads_total",
				Help: "Total number of graph upload attempts by status",
			},
			[]string{"status"},
		),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathserve_solves_total",
				Help: "Total number of shortest-path queries by outcome",
			},
			[]string{"outcome"},
		),
		SolveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "pathserve_solve_duration_seconds",
				Help: "Duration of shortest-path computations",
			},
		),
	}
	reg.MustRegister(m.Uploads, m.Solves, m.SolveDuration)
	return m
}

func (m *Metrics) observeUpload(status string) {
	if m == nil {
		return
	}
	m.Uploads.WithLabelValues(status).Inc()
}

func (m *Metrics) observeSolve(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.Solves.WithLabelValues(outcome).Inc()
	m.SolveDuration.Observe(seconds)
}
