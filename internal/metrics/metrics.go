package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the reminders service.
type Metrics struct {
	// Registry holds only the reminders metrics, never the global default.
	Registry *prometheus.Registry

	projectionsTotal *prometheus.CounterVec
	dueItemsTotal    *prometheus.CounterVec
	windowAmount     prometheus.Histogram
	requestDuration  *prometheus.HistogramVec
}

// New creates a dedicated registry and registers all application metrics in it.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		projectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reminders_projections_total",
				Help: "Total projections computed, by effective horizon.",
			},
			[]string{"horizon"},
		),
		dueItemsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reminders_due_items_total",
				Help: "Total due items emitted, by kind.",
			},
			[]string{"kind"},
		),
		windowAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reminders_projection_amount_gbp",
				Help:    "Sum of amounts due across a projected window.",
				Buckets: []float64{0, 25, 50, 100, 250, 500, 1000, 2000},
			},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reminders_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "status"},
		),
	}
}

// RecordProjection counts a projection and the items it produced.
func (m *Metrics) RecordProjection(manifest *domain.Manifest) {
	m.projectionsTotal.WithLabelValues(strconv.Itoa(len(manifest.Days))).Inc()

	for _, day := range manifest.Days {
		for _, item := range day.Items {
			kind := "payment"
			if item.Name == domain.FuelItemName {
				kind = "fuel"
			}
			m.dueItemsTotal.WithLabelValues(kind).Inc()
		}
	}

	total, _ := manifest.WindowTotal().Float64()
	m.windowAmount.Observe(total)
}

// RecordRequestDuration records how long a request to route took.
func (m *Metrics) RecordRequestDuration(route string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
