// Package server exposes gridpath over HTTP: one-shot solves, method
// comparison, built-in scenarios, a WebSocket trace stream and Prometheus
// metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/runlog"
	"github.com/katalvlaran/gridpath/solver"
)

// maxBodySize caps request bodies; a 1000×1000 grid fits comfortably.
const maxBodySize = 4 << 20

// Deps holds the collaborators and tunables of a Server.
type Deps struct {
	Log         *logrus.Logger
	Runs        *runlog.Store // optional; nil disables run recording
	CacheSize   int
	StreamDelay time.Duration
	Workers     int
}

// Server is the gridpath HTTP server.
type Server struct {
	log     *logrus.Logger
	runs    *runlog.Store
	cache   *lru.Cache[string, solver.Outcome]
	delay   time.Duration
	workers int
	router  chi.Router
}

// New creates a Server and builds its routes.
func New(d Deps) (*Server, error) {
	if d.Log == nil {
		return nil, errors.New("server: logger is required")
	}
	if d.CacheSize < 1 {
		d.CacheSize = 1
	}
	cache, err := lru.New[string, solver.Outcome](d.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("server: create cache: %w", err)
	}

	s := &Server{
		log:     d.Log,
		runs:    d.Runs,
		cache:   cache,
		delay:   d.StreamDelay,
		workers: d.Workers,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(prometheusMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/compare", s.handleCompare)
		r.Get("/stream", s.handleStream)
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", s.handleScenarioList)
			r.Get("/{name}", s.handleScenarioGet)
			r.Get("/{name}/solve", s.handleScenarioSolve)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
