package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/simaogato/ethicalfolio-backend/internal/usecase/audience"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/chart"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/ringlayout"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/riskdial"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/session"
)

// Services are the use cases exposed over HTTP
type Services struct {
	Chart    *chart.ChartService
	Dial     *riskdial.DialService
	Matrix   *audience.MatrixService
	Sessions *session.Service
}

// Config holds server configuration
type Config struct {
	Addr        string
	Log         zerolog.Logger
	CORSOrigins []string
	Geometry    ringlayout.Geometry
}

// Server represents the HTTP server
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	services Services
	geometry ringlayout.Geometry
}

// New creates a new HTTP server
func New(cfg Config, services Services) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		log:      cfg.Log.With().Str("component", "http").Logger(),
		services: services,
		geometry: cfg.Geometry,
	}

	s.setupMiddleware(cfg.CORSOrigins)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/portfolios/{profile}", func(r chi.Router) {
			r.Get("/", s.handlePortfolio)
			r.Get("/ring", s.handleRing)
			r.Get("/ring.svg", s.handleRingSVG)
		})

		r.Get("/risk/{profile}", s.handleRiskDial)
		r.Get("/audience", s.handleAudience)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleStartSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Post("/sectors", s.handleSectorEvent)
				r.Post("/risks", s.handleRiskEvent)
				r.Put("/segment", s.handleSelectSegment)
				r.Put("/profile", s.handleSelectProfile)
				r.Get("/ring", s.handleSessionRing)
				r.Get("/dial", s.handleSessionDial)
				r.Get("/audience", s.handleSessionAudience)
			})
		})
	})
}

// Handler returns the root handler, used by tests and embedding servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
