// Package server exposes a running scene over HTTP.
//
// Handlers never touch scene state directly. Each request that needs the
// scene is submitted as a pipeline.Request and executed by the frame loop
// between two frames, so the scene stays single-threaded.
//
// Routes:
//
//	GET /stats         streaming snapshot as JSON
//	GET /snapshot.svg  SVG of the visible live set
//	GET /metrics       Prometheus metrics
//	GET /version       build information as JSON
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/graphstream/pkg/buildinfo"
	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/pipeline"
)

const (
	// DefaultRequestTimeout bounds how long a handler waits for the frame
	// loop.
	DefaultRequestTimeout = 5 * time.Second

	shutdownTimeout = 5 * time.Second
)

// Server routes HTTP requests to a scene's frame loop.
type Server struct {
	requests chan pipeline.Request
	gatherer prometheus.Gatherer
	logger   *log.Logger
	router   chi.Router
}

// New creates a server. Metrics are gathered from g; a nil g serves the
// default registry. A nil logger selects log.Default().
func New(g prometheus.Gatherer, logger *log.Logger) *Server {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		requests: make(chan pipeline.Request),
		gatherer: g,
		logger:   logger,
	}
	s.router = s.routes()
	return s
}

// Requests is the channel the frame loop must serve, typically passed as
// pipeline.RunOptions.Requests.
func (s *Server) Requests() <-chan pipeline.Request { return s.requests }

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(middleware.Timeout(DefaultRequestTimeout))

	r.Get("/stats", s.handleStats)
	r.Get("/snapshot.svg", s.handleSnapshot)
	r.Get("/version", s.handleVersion)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}

// submit runs fn on the frame loop and waits for it to finish.
func (s *Server) submit(ctx context.Context, fn func(*pipeline.Scene)) error {
	done := make(chan struct{})
	req := func(sc *pipeline.Scene) {
		fn(sc)
		close(done)
	}
	select {
	case s.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var snap pipeline.Snapshot
	if err := s.submit(r.Context(), func(sc *pipeline.Scene) { snap = sc.Snapshot() }); err != nil {
		s.unavailable(w, err)
		return
	}
	writeJSON(w, snap)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	var svg []byte
	if err := s.submit(r.Context(), func(sc *pipeline.Scene) { svg = sc.SVG() }); err != nil {
		s.unavailable(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, buildinfo.Get())
}

// unavailable answers 503 with the TIMEOUT or CANCELED code of err.
func (s *Server) unavailable(w http.ResponseWriter, err error) {
	err = errors.FromContext(err)
	code := errors.GetCode(err)
	s.logger.Warn("frame loop did not answer", "code", code, "err", err)
	http.Error(w, "scene unavailable: "+string(code), http.StatusServiceUnavailable)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
