package agent

import (
	"net/http"
	"time"

	"github.com/cuemby/flowsched/pkg/metrics"
)

// HealthHandler serves the component health of the agent process along
// with its Prometheus metrics.
func HealthHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/health", metrics.HealthHandler())
	mux.Handle("/ready", metrics.ReadyHandler())
	mux.Handle("/live", metrics.LivenessHandler())
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

// NewHealthServer returns an HTTP server for HealthHandler on addr.
func NewHealthServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      HealthHandler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
