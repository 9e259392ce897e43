package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/facultyhub/internal/bootstrap"
	"github.com/yigit/facultyhub/internal/config"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
)

// Server holds the state for the HTTP server.
type Server struct {
	config  *config.Config
	router  *gin.Engine
	storage *bootstrap.Storage
	deps    *bootstrap.Dependencies
	logger  zerolog.Logger
	http    *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(ctx context.Context, configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	storage, err := bootstrap.SetupStorage(ctx, cfg, lgr, true)
	if err != nil {
		return nil, fmt.Errorf("failed to setup storage: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, storage, lgr)
	if err != nil {
		_ = storage.Close(ctx)
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}
	bootstrap.SeedIfEnabled(ctx, cfg, deps, lgr)

	return &Server{
		config:  cfg,
		router:  bootstrap.SetupRouter(cfg, deps, storage, lgr),
		storage: storage,
		deps:    deps,
		logger:  lgr,
	}, nil
}

// Run starts the HTTP server and the scheduled jobs, then blocks until a
// signal or a server error and shuts down gracefully.
func (s *Server) Run() error {
	if s.deps.Refresher != nil {
		if err := s.deps.Refresher.Start(); err != nil {
			return fmt.Errorf("failed to start eligibility refresher: %w", err)
		}
	}

	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(osSignals)

	var runErr error
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return errors.Join(runErr, s.Shutdown(context.Background()))
}

// Shutdown gracefully stops the server, the jobs and the storage connection.
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := helpers.ParseDuration(s.config.Server.ShutdownTimeout, 10*time.Second)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var errs []error

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			errs = append(errs, err)
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if s.deps != nil && s.deps.Refresher != nil {
		s.deps.Refresher.Stop()
	}

	if s.storage != nil {
		s.logger.Info().Str("driver", s.storage.Driver).Msg("Closing storage connection...")
		if err := s.storage.Close(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Storage close error")
			errs = append(errs, err)
		}
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if len(errs) > 0 {
		return fmt.Errorf("server shutdown completed with errors: %w", errors.Join(errs...))
	}
	return nil
}
