package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/scheduler"
	"github.com/cuemby/flowsched/pkg/storage"
)

// Version is reported by the health endpoint. It is set at build time.
var Version = "dev"

// HealthServer provides HTTP health check endpoints
type HealthServer struct {
	scheduler *scheduler.Scheduler
	store     storage.Store
	mux       *http.ServeMux
}

// NewHealthServer creates a new health check HTTP server
func NewHealthServer(s *scheduler.Scheduler, store storage.Store) *HealthServer {
	mux := http.NewServeMux()
	hs := &HealthServer{
		scheduler: s,
		store:     store,
		mux:       mux,
	}

	mux.HandleFunc("/health", hs.healthHandler)
	mux.HandleFunc("/ready", hs.readyHandler)
	mux.Handle("/live", metrics.LivenessHandler())
	mux.Handle("/metrics", metrics.Handler())

	return hs
}

// Start starts the health check HTTP server
func (hs *HealthServer) Start(addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      hs.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Version    string            `json:"version,omitempty"`
	Uptime     string            `json:"uptime,omitempty"`
	Components map[string]string `json:"components,omitempty"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Message   string            `json:"message,omitempty"`
}

// healthHandler reports the registered components. It answers 503 only
// when a critical component is unhealthy.
func (hs *HealthServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := metrics.GetHealth()
	response := HealthResponse{
		Status:     health.Status,
		Timestamp:  health.Timestamp,
		Version:    Version,
		Uptime:     health.Uptime,
		Components: health.Components,
	}

	statusCode := http.StatusOK
	if health.Status == metrics.StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// readyHandler reports whether the scheduler can accept agents
func (hs *HealthServer) readyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	checks := make(map[string]string)
	ready := true
	var message string

	if hs.scheduler != nil {
		c := hs.scheduler.Counts()
		checks["scheduler"] = "ok"
		checks["servers"] = fmt.Sprintf("%d benchmarked, %d pending", c.ServersProfiled, c.ServersPending)
		if snap := hs.scheduler.Graph(); snap != nil {
			checks["last_pass"] = fmt.Sprintf("pass %d at %s", snap.Pass, snap.Time.Format(time.RFC3339))
		}
	} else {
		checks["scheduler"] = "not initialized"
		ready = false
		message = "Scheduler not initialized"
	}

	if hs.store != nil {
		if _, err := hs.store.ListBenchmarks(); err != nil {
			checks["storage"] = fmt.Sprintf("error: %v", err)
			ready = false
			if message == "" {
				message = "Benchmark store not accessible"
			}
		} else {
			checks["storage"] = "ok"
		}
	} else {
		checks["storage"] = "not initialized"
		ready = false
	}

	readiness := metrics.GetReadiness()
	for name, state := range readiness.Components {
		checks["component."+name] = state
	}
	if readiness.Status != metrics.StatusReady {
		ready = false
		if message == "" {
			message = readiness.Message
		}
	}

	status := "ready"
	statusCode := http.StatusOK

	if !ready {
		status = "not ready"
		statusCode = http.StatusServiceUnavailable
	}

	response := ReadyResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
		Message:   message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// GetHandler returns the HTTP handler for embedding in other servers
func (hs *HealthServer) GetHandler() http.Handler {
	return hs.mux
}
