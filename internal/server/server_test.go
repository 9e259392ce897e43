package server

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yigit/facultyhub/internal/bootstrap"
	"github.com/yigit/facultyhub/internal/config"
)

func TestShutdownWithoutRun(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverMemory
	cfg.Server.ShutdownTimeout = "1s"
	cfg.Server.StoragePath = t.TempDir()
	cfg.Server.MaxUploadSizeMB = 1
	cfg.Jobs.EligibilityRefreshEnabled = true
	cfg.Jobs.EligibilityRefreshSchedule = "@daily"
	lgr := zerolog.New(io.Discard)

	storage, err := bootstrap.SetupStorage(context.Background(), cfg, lgr, false)
	if err != nil {
		t.Fatalf("SetupStorage: %v", err)
	}
	deps, err := bootstrap.BuildDependencies(cfg, storage, lgr)
	if err != nil {
		t.Fatalf("BuildDependencies: %v", err)
	}

	s := &Server{config: cfg, storage: storage, deps: deps, logger: lgr}
	if err := s.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
