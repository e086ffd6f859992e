package sidenav

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks render activity for the Prometheus endpoint. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	renders         *prometheus.CounterVec
	renderErrors    prometheus.Counter
	renderDuration  *prometheus.HistogramVec
	entriesRendered prometheus.Gauge
}

// NewMetrics creates a metrics set on the given registry. A nil registry
// gets a private one with the standard Go and process collectors attached;
// a caller-supplied registry is used as-is, so shared registries are not
// double-registered with runtime collectors.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(prometheus.NewGoCollector())
		registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	}

	m := &Metrics{
		registry: registry,
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sidenav_renders_total",
			Help: "Total number of navigation renders by variant.",
		}, []string{"variant"}),
		renderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sidenav_render_errors_total",
			Help: "Total number of renders that failed to write.",
		}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sidenav_render_duration_seconds",
			Help:    "Time spent rendering navigation markup.",
			Buckets: prometheus.DefBuckets,
		}, []string{"variant"}),
		entriesRendered: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sidenav_entries_rendered",
			Help: "Number of menu entries emitted by the most recent render.",
		}),
	}

	registry.MustRegister(m.renders, m.renderErrors, m.renderDuration, m.entriesRendered)
	return m
}

// ObserveRender records one completed render.
func (m *Metrics) ObserveRender(variant string, elapsed time.Duration, entries int) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(variant).Inc()
	m.renderDuration.WithLabelValues(variant).Observe(elapsed.Seconds())
	m.entriesRendered.Set(float64(entries))
}

// IncRenderError records a render that failed to write.
func (m *Metrics) IncRenderError() {
	if m == nil {
		return
	}
	m.renderErrors.Inc()
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry exposes the backing registry so callers can attach their own
// collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
