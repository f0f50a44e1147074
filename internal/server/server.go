package server

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/me/cpusched/internal/config"
	"github.com/me/cpusched/internal/kernel"
	"github.com/me/cpusched/internal/scheduler"
)

// Server is the simulation REST API server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	base      *slog.Logger
	config    config.ServerConfig
	startTime time.Time
	registry  *scheduler.Registry
	runs      atomic.Int64
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithRegistry replaces the built-in scheduler registry.
func WithRegistry(reg *scheduler.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// New creates a new Server with all routes registered.
func New(cfg config.ServerConfig, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		base:      logger,
		config:    cfg,
		startTime: time.Now(),
		registry:  scheduler.DefaultRegistry(logger),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// newKernel builds the kernel for one request. Kernels hold no run state, but
// the seed differs per request.
func (s *Server) newKernel(seed uint64) *kernel.Kernel {
	return kernel.New(s.base, kernel.WithRegistry(s.registry), kernel.WithSeed(seed))
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Route("/api/v1", func(r chi.Router) {
		// Discovery
		r.Get("/", s.handleDiscovery)

		// Health
		r.Get("/health", s.handleHealth)

		// Disciplines
		r.Route("/disciplines", func(r chi.Router) {
			r.Get("/", s.handleListDisciplines)
			r.Get("/{id}", s.handleGetDiscipline)
		})

		// Simulations
		r.Post("/simulations", s.handleCreateSimulation)
	})
}
