// Package server provides the HTTP server and routing for the market API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/investai/internal/di"
	"github.com/aristath/investai/internal/events"
	comparisonhandlers "github.com/aristath/investai/internal/modules/comparison/handlers"
	dashboardhandlers "github.com/aristath/investai/internal/modules/dashboard/handlers"
	markethourshandlers "github.com/aristath/investai/internal/modules/market_hours/handlers"
)

// Config holds server configuration
type Config struct {
	Log             zerolog.Logger
	Port            int
	DevMode         bool
	StreamHeartbeat time.Duration
	Container       *di.Container // DI container with all services
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	port           int
	devMode        bool
	heartbeat      time.Duration
	container      *di.Container
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	heartbeat := cfg.StreamHeartbeat
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}

	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		port:      cfg.Port,
		devMode:   cfg.DevMode,
		heartbeat: heartbeat,
		container: cfg.Container,
		systemHandlers: NewSystemHandlers(
			cfg.Container.MarketHoursService,
			cfg.Container.EventBus,
			cfg.Log,
		),
	}

	s.setupMiddleware()
	s.setupRoutes()

	// WriteTimeout stays unset: event streams hold the response open.
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// setupMiddleware installs the middleware shared by every route
func (s *Server) setupMiddleware() {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	// Long-lived streams skip the request timeout and compression
	stream := NewEventsStreamHandler(s.container.EventBus, s.heartbeat, s.log)
	socket := NewEventsSocketHandler(s.container.EventBus, s.heartbeat, s.log)
	s.router.Get("/api/events/stream", stream.ServeHTTP)
	s.router.Get("/api/events/ws", socket.ServeHTTP)

	s.router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		if !s.devMode {
			r.Use(middleware.Compress(5))
		}

		r.Route("/api", func(r chi.Router) {
			markethourshandlers.NewHandler(s.container.MarketHoursService, s.log).RegisterRoutes(r)
			comparisonhandlers.NewHandler(s.container.SearchIndex, s.log).RegisterRoutes(r)
			dashboardhandlers.NewHandler(s.log).RegisterRoutes(r)

			r.Route("/system", func(r chi.Router) {
				r.Get("/status", s.systemHandlers.HandleSystemStatus)
			})
		})
	})
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.container.EventManager.EmitTyped("server", &events.SystemStatusChangedData{
		Status: "running",
		Reason: "server started",
	})

	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.container.EventManager.EmitTyped("server", &events.SystemStatusChangedData{
		Status: "stopping",
		Reason: "shutdown requested",
	})

	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

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
