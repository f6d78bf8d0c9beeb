package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"siacli/internal/infrastructure"
)

// MetricsHandler exposes the Prometheus registry.
func MetricsHandler(m *infrastructure.Metrics) http.Handler {
	return promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})
}
