package dashboard

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cuemby/flowsched/pkg/events"
	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/scheduler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Server is the read mostly HTTP dashboard of a scheduler
type Server struct {
	scheduler *scheduler.Scheduler
	events    *events.Broker
	health    http.Handler
	router    *chi.Mux
	upgrader  websocket.Upgrader
	http      *http.Server
	logger    zerolog.Logger
}

// NewServer builds the dashboard router. health serves /health, /ready,
// /live and /metrics; when nil only /metrics is served. broker may be nil, in
// which case the event stream is unavailable.
func NewServer(s *scheduler.Scheduler, broker *events.Broker, health http.Handler) *Server {
	d := &Server{
		scheduler: s,
		events:    broker,
		health:    health,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: log.WithComponent("dashboard"),
	}
	d.initRouter()
	return d
}

func (d *Server) initRouter() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(d.logRequests)

	if d.health != nil {
		r.Method(http.MethodGet, "/health", d.health)
		r.Method(http.MethodGet, "/ready", d.health)
		r.Method(http.MethodGet, "/live", d.health)
		r.Method(http.MethodGet, "/metrics", d.health)
	} else {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/servers", d.listServers)
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", d.listTasks)
			r.Post("/", d.submitTask)
			r.Get("/{taskID}", d.getTask)
		})
		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", d.getSchedule)
			r.Get("/graph", d.getGraph)
			r.Get("/graph.dot", d.getGraphDot)
			r.Get("/graph/ws", d.streamGraph)
		})
		r.Get("/events", d.streamEvents)
	})
	d.router = r
}

// Handler returns the dashboard router
func (d *Server) Handler() http.Handler {
	return d.router
}

// Start serves the dashboard on addr until Shutdown
func (d *Server) Start(addr string) error {
	d.http = &http.Server{
		Addr:              addr,
		Handler:           d.router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	d.logger.Info().Str("addr", addr).Msg("Dashboard listening")
	if err := d.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server
func (d *Server) Shutdown(ctx context.Context) error {
	if d.http == nil {
		return nil
	}
	return d.http.Shutdown(ctx)
}

func (d *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		timer := metrics.NewTimer()
		next.ServeHTTP(ww, r)
		d.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Str("request_id", middleware.GetReqID(r.Context())).
			Dur("duration", timer.Duration()).
			Msg("HTTP request")
	})
}
