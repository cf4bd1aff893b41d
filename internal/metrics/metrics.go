// Package metrics exposes Prometheus request counters for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// System counts handled requests and serves the registry in the
// Prometheus exposition format.
type System interface {
	Middleware() func(http.Handler) http.Handler
	Handler() http.Handler
}

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// New creates a metrics system backed by its own registry, so separate
// instances never collide on registration.
func New() System {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled by the service.",
		},
		[]string{"method", "code"},
	)
	registry.MustRegister(requests)

	return &metrics{
		registry: registry,
		requests: requests,
	}
}

// Middleware returns middleware that increments http_requests_total once the
// handler completes, labelled by method and status code.
func (m *metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return promhttp.InstrumentHandlerCounter(m.requests, next)
	}
}

// Handler serves the registry for scraping.
func (m *metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}
