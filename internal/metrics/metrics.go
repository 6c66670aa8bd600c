// Package metrics exposes the proxy's operational counters. These sit
// entirely outside the core's specified contract — the core never reads
// them back — so every call site treats them as fire-and-forget.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registry is private to this package rather than the global
// prometheus.DefaultRegisterer, so embedding the proxy as a library never
// collides with a host process's own metrics.
var registry = prometheus.NewRegistry()

var factory = promauto.With(registry)

var (
	// PrimaryRequestsTotal counts every client connection accepted.
	PrimaryRequestsTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "shadowproxy_primary_requests_total",
		Help: "Total client connections accepted by the primary path.",
	})

	// PrimaryErrorsTotal counts connections that ended in a synthetic
	// error response or a client I/O failure.
	PrimaryErrorsTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "shadowproxy_primary_errors_total",
		Help: "Total primary-path failures (synthetic 5xx or client I/O error).",
	})

	// ShadowRequestsTotal counts shadow-origin calls made by the
	// analyzer, labeled by outcome ("ok" or "error").
	ShadowRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "shadowproxy_shadow_requests_total",
		Help: "Total shadow-origin calls made by the analyzer.",
	}, []string{"outcome"})

	// ComparisonsTotal counts emitted comparison records, labeled by
	// whether the primary and shadow decodes each succeeded.
	ComparisonsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "shadowproxy_comparisons_total",
		Help: "Total comparison records emitted by the analyzer.",
	}, []string{"primary_ok", "shadow_ok"})
)

// Serve starts a blocking HTTP server exposing /metrics on addr. Intended
// to run in its own goroutine; callers that don't configure a metrics
// address never call this.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
