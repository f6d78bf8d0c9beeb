package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the analytics pipeline.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DatasetLoadsTotal   *prometheus.CounterVec
	DatasetRecords      prometheus.Gauge
	DatasetLoadDuration prometheus.Histogram

	ViewComputationsTotal   *prometheus.CounterVec
	ViewComputationDuration *prometheus.HistogramVec
}

// NewMetrics creates a metrics set backed by its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sia",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sia",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DatasetLoadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sia",
			Subsystem: "dataset",
			Name:      "loads_total",
			Help:      "Dataset load attempts by outcome (hit, parsed, error)",
		}, []string{"outcome"}),

		DatasetRecords: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "sia",
			Subsystem: "dataset",
			Name:      "records",
			Help:      "Record count of the most recently loaded dataset",
		}),

		DatasetLoadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sia",
			Subsystem: "dataset",
			Name:      "load_duration_seconds",
			Help:      "Time spent resolving and parsing a dataset source",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),

		ViewComputationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sia",
			Subsystem: "views",
			Name:      "computations_total",
			Help:      "Analytic view computations by kind and outcome",
		}, []string{"view", "outcome"}),

		ViewComputationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sia",
			Subsystem: "views",
			Name:      "computation_duration_seconds",
			Help:      "Analytic view computation latency by kind",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"view"}),
	}
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
