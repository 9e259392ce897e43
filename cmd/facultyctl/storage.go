package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/facultyhub/internal/bootstrap"
	"github.com/yigit/facultyhub/internal/config"
)

// session is a configured logger, store and dependency graph for one command
type session struct {
	cfg     *config.Config
	logger  zerolog.Logger
	storage *bootstrap.Storage
	deps    *bootstrap.Dependencies
}

func openSession(ctx context.Context, configPath string, migrate bool) (*session, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	storage, err := bootstrap.SetupStorage(ctx, cfg, lgr, migrate)
	if err != nil {
		return nil, fmt.Errorf("failed to setup storage: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, storage, lgr)
	if err != nil {
		_ = storage.Close(ctx)
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &session{
		cfg:     cfg,
		logger:  lgr,
		storage: storage,
		deps:    deps,
	}, nil
}

func (s *session) Close(ctx context.Context) {
	if err := s.storage.Close(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Storage close error")
	}
}
