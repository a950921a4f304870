package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for map rendering. All methods are
// nil-safe so components can run without metrics.
type Metrics struct {
	RunsTotal      *prometheus.CounterVec // labels: outcome={success,failure,rejected}
	RegionsPainted prometheus.Counter
	RenderDuration prometheus.Histogram
	Rendering      prometheus.Gauge
	FilesSaved     prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "firemap",
			Name:      "render_runs_total",
			Help:      "Render runs by outcome.",
		}, []string{"outcome"}),
		RegionsPainted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firemap",
			Name:      "regions_painted_total",
			Help:      "Regions flood-filled and labeled.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "firemap",
			Name:      "render_duration_seconds",
			Help:      "Wall time of a complete render run.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		Rendering: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "firemap",
			Name:      "rendering",
			Help:      "1 while a render run is in flight.",
		}),
		FilesSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firemap",
			Name:      "files_saved_total",
			Help:      "Map images written to disk.",
		}),
	}
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// means the default Prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := newMetrics()
	reg.MustRegister(m.RunsTotal, m.RegionsPainted, m.RenderDuration, m.Rendering, m.FilesSaved)
	return m
}

// NewMetricsForTesting returns unregistered collectors.
func NewMetricsForTesting() *Metrics { return newMetrics() }

// RunStarted marks a run as in flight.
func (m *Metrics) RunStarted() {
	if m == nil {
		return
	}
	m.Rendering.Set(1)
}

// RunFinished records the outcome and duration of a run.
func (m *Metrics) RunFinished(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Rendering.Set(0)
	m.RunsTotal.WithLabelValues(outcome).Inc()
	m.RenderDuration.Observe(d.Seconds())
}

// RunRejected counts a submit that arrived while a run was in flight.
func (m *Metrics) RunRejected() {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues("rejected").Inc()
}

// RegionPainted counts one painted region.
func (m *Metrics) RegionPainted() {
	if m == nil {
		return
	}
	m.RegionsPainted.Inc()
}

// FileSaved counts one written output file.
func (m *Metrics) FileSaved() {
	if m == nil {
		return
	}
	m.FilesSaved.Inc()
}
