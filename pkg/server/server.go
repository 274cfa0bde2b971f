// Package server exposes graph editing and shortest-path queries over HTTP.
//
// # Routes
//
//	POST   /graphs                        create a graph: {"mode"} or {"preset"}
//	GET    /graphs                        list graph IDs
//	GET    /graphs/{id}                   graph document
//	DELETE /graphs/{id}
//	POST   /graphs/{id}/nodes             {"id"}
//	DELETE /graphs/{id}/nodes/{node}
//	POST   /graphs/{id}/edges             {"from","to","weight"}
//	DELETE /graphs/{id}/edges/{from}/{to}
//	GET    /graphs/{id}/run?source=X      distances, parents, history
//	GET    /graphs/{id}/matrix            adjacency matrix
//	GET    /graphs/{id}/path?source=X&target=Y
//	GET    /healthz
//
// Unreached distances and missing matrix cells are encoded as null. Errors
// are returned as {"code","message"} with a status derived from the code.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/fordview/pkg/cache"
	"github.com/matzehuels/fordview/pkg/graph"
	"github.com/matzehuels/fordview/pkg/store"
)

// Server serves the HTTP API over a graph store.
type Server struct {
	store       store.Store
	runner      *cache.Runner
	logger      *log.Logger
	defaultMode graph.Mode

	// mu serializes read-modify-write updates within this process.
	mu sync.Mutex
}

// Option configures a [Server].
type Option func(*Server)

// WithRunner sets the cached runner. The default runs without a cache.
func WithRunner(r *cache.Runner) Option {
	return func(s *Server) { s.runner = r }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithDefaultMode sets the mode of graphs created without one.
func WithDefaultMode(m graph.Mode) Option {
	return func(s *Server) { s.defaultMode = m }
}

// New creates a server over st.
func New(st store.Store, opts ...Option) *Server {
	s := &Server{store: st, defaultMode: graph.Directed}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.runner == nil {
		s.runner = cache.NewRunner(nil, nil, 0, s.logger)
	}
	return s
}

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.health)
	r.Route("/graphs", func(r chi.Router) {
		r.Post("/", s.createGraph)
		r.Get("/", s.listGraphs)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getGraph)
			r.Delete("/", s.deleteGraph)
			r.Post("/nodes", s.addNode)
			r.Delete("/nodes/{node}", s.removeNode)
			r.Post("/edges", s.addEdge)
			r.Delete("/edges/{from}/{to}", s.removeEdge)
			r.Get("/run", s.run)
			r.Get("/matrix", s.matrix)
			r.Get("/path", s.path)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
