package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/docnav/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port        int
	AllowAll    bool          // allow all CORS origins (dev mode)
	SessionTTL  time.Duration // idle lifetime of API sessions
	MaxSessions int
}

// Server exposes sidebar sessions over HTTP and WebSocket.
type Server struct {
	cfg        Config
	data       *site.Data
	sessions   *SessionStore
	logger     *log.Logger
	router     chi.Router
	httpServer *http.Server
	stopSweep  chan struct{}
	stopOnce   sync.Once
}

// New creates a server over the given site data. A nil logger logs to stderr.
func New(cfg Config, data *site.Data, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "docnav"})
	}
	s := &Server{
		cfg:       cfg,
		data:      data,
		sessions:  NewSessionStore(data, cfg.SessionTTL, cfg.MaxSessions),
		logger:    logger,
		stopSweep: make(chan struct{}),
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  s.logger.StandardLog(),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		RegisterRoutes(r, s.data, s.sessions)
	})

	// WebSocket connections outlive the request timeout.
	r.Get("/ws/sidebar", s.handleWebSocket)

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Sessions returns the session registry.
func (s *Server) Sessions() *SessionStore { return s.sessions }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	go s.sweepSessions(s.stopSweep)

	s.logger.Info("docnav server listening", "addr", s.httpServer.Addr, "routes", len(s.data.Routes), "locale", s.data.DefaultLocale)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopSweep) })
	return s.httpServer.Shutdown(ctx)
}

// sweepSessions expires idle sessions until stop is closed.
func (s *Server) sweepSessions(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := s.sessions.Sweep(); n > 0 {
				s.logger.Debug("expired sessions", "count", n, "open", s.sessions.Len())
			}
		case <-stop:
			return
		}
	}
}
