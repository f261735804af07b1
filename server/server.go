// Package server provides the HTTP server for the Mergington High School
// activity signup service.
//
// The server exposes a small JSON API over the in-memory activity roster,
// plus an embedded web UI for students.
//
// # Endpoints
//
//   - GET / - Redirects to the web UI
//   - GET /static/* - Web UI assets
//   - GET /activities - Full mapping of activity name to record
//   - POST /activities/{activity}/signup?email= - Register a student
//   - POST /activities/{activity}/unregister?email= - Remove a student
//   - GET /health - Simple health check, returns "ok"
//   - GET /config - Returns current configuration as YAML
//   - GET /metrics - Prometheus scrape endpoint
//
// # Example
//
//	srv, err := server.New(config.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/mergington/activities/config"
	"github.com/mergington/activities/logging"
	"github.com/mergington/activities/metrics"
	"github.com/mergington/activities/roster"
	"github.com/mergington/activities/server/cron"
	"github.com/mergington/activities/server/handlers"
)

//go:embed static
var staticFiles embed.FS

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// Server is the HTTP server for the activity signup service.
type Server struct {
	cfg           *config.ServerConfig
	logger        *slog.Logger
	store         *roster.Store
	scrapeReg     *metrics.ScrapeRegistry
	rosterMetrics *metrics.RosterMetrics
	pusher        *metrics.Pusher
	cronTrigger   *cron.CronTrigger
	httpServer    *http.Server
}

// Option configures a Server.
type Option func(*Server) error

// WithListenAddr overrides the configured listen address.
func WithListenAddr(addr string) Option {
	return func(s *Server) error {
		s.cfg.Listener.Addr = addr
		return nil
	}
}

// WithLogger overrides the logger built from the config.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// New creates a new Server from the given configuration. It seeds the
// roster, registers metrics, and wires the snapshot push trigger when one
// is configured.
func New(cfg *config.ServerConfig, opts ...Option) (*Server, error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	seed := roster.DefaultActivities()
	if cfg.SeedFile != "" {
		seed, err = roster.LoadSeed(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("loading roster seed: %w", err)
		}
	}
	store := roster.NewStore(seed)

	scrapeReg, err := metrics.NewScrapeRegistry()
	if err != nil {
		return nil, fmt.Errorf("creating metrics registry: %w", err)
	}
	rosterMetrics, err := metrics.NewRosterMetrics(scrapeReg)
	if err != nil {
		return nil, fmt.Errorf("registering roster metrics: %w", err)
	}
	rosterMetrics.ObserveSizes(store.Sizes())

	s := &Server{
		cfg:           cfg,
		logger:        logger,
		store:         store,
		scrapeReg:     scrapeReg,
		rosterMetrics: rosterMetrics,
	}

	if cfg.Monitoring.VictoriaMetricsURL != "" {
		s.pusher = metrics.NewPusher(metrics.PushConfig{
			URL:    cfg.Monitoring.VictoriaMetricsURL,
			Prefix: cfg.Monitoring.MetricsPrefix,
			Job:    cfg.Monitoring.JobName,
		})
	}

	if cfg.Snapshot.Schedule != "" {
		snapshot := newRosterSnapshot(store, s.pusher)
		trigger, err := cron.NewCronTrigger(cfg.Snapshot.Schedule, snapshot, logger)
		if err != nil {
			return nil, fmt.Errorf("creating snapshot trigger: %w", err)
		}
		s.cronTrigger = trigger
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	logger.Info("roster seeded", "activities", len(store.Names()))

	return s, nil
}

// Logger returns the server's logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// Config returns the current configuration.
func (s *Server) Config() *config.ServerConfig {
	return s.cfg
}

// Store returns the activity roster store.
func (s *Server) Store() *roster.Store {
	return s.store
}

// Handler returns the fully wired request handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux)
	return handlers.RequestLogger(s.logger, mux)
}

// Run starts the HTTP server and blocks until the context is cancelled.
// It performs a graceful shutdown when the context is done.
// If a snapshot trigger is configured, it will be started automatically.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Listener.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}

	if s.cronTrigger != nil {
		s.logger.Info("starting snapshot trigger",
			"schedule", s.cfg.Snapshot.Schedule,
			"next_run", s.cronTrigger.NextRun(),
		)
		s.cronTrigger.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", s.cfg.Listener.Addr)
		err := s.listenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// listenAndServe starts the listener, with TLS when certificates are configured.
func (s *Server) listenAndServe() error {
	if s.cfg.Listener.CertFile == "" {
		return s.httpServer.ListenAndServe()
	}

	loader, err := NewCertLoader(s.cfg.Listener.CertFile, s.cfg.Listener.KeyFile, s.logger)
	if err != nil {
		return fmt.Errorf("loading TLS certificate: %w", err)
	}
	s.httpServer.TLSConfig = loader.TLSConfig()
	return s.httpServer.ListenAndServeTLS("", "")
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	activitiesHandler := handlers.NewActivitiesHandler(s.store)
	signupHandler := handlers.NewSignupHandler(s.logger, s.store, s.rosterMetrics)
	unregisterHandler := handlers.NewUnregisterHandler(s.logger, s.store, s.rosterMetrics)
	configHandler := handlers.NewConfigHandler(s)

	// API endpoints
	mux.HandleFunc("GET /health", handlers.HandleHealth)
	mux.Handle("GET /activities", activitiesHandler)
	mux.Handle("POST /activities/{activity}/signup", signupHandler)
	mux.Handle("POST /activities/{activity}/unregister", unregisterHandler)
	mux.Handle("GET /config", configHandler)
	mux.Handle("GET /metrics", s.scrapeReg.Handler())

	// Web UI
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		s.logger.Error("failed to create static file system", "error", err)
		return
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
}
