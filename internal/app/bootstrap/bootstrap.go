package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	rulingengine "veredicto/contexts/governance/ruling-engine"
	"veredicto/contexts/governance/ruling-engine/adapters/eligibility"
	postgresadapter "veredicto/contexts/governance/ruling-engine/adapters/postgres"
	"veredicto/contexts/governance/ruling-engine/ports"
	"veredicto/internal/platform/config"
	"veredicto/internal/platform/db"
	"veredicto/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	if cfg.AutoMigrate {
		if err := repo.Migrate(context.Background()); err != nil {
			_ = pg.Close()
			return nil, err
		}
	}

	var checker ports.EligibilityChecker
	if cfg.EligibilityAPIURL == "" {
		logger.Info("eligibility endpoint not configured, every voter treated as eligible",
			"event", "eligibility_passthrough_enabled",
			"module", "internal/app/bootstrap",
			"layer", "app",
		)
		checker = eligibility.Passthrough{}
	} else {
		checker = eligibility.NewClient(cfg.EligibilityAPIURL, cfg.EligibilityTimeout, logger)
	}

	module := rulingengine.NewModule(rulingengine.Dependencies{
		Rulings:     repo,
		Votes:       repo,
		Tally:       repo,
		Eligibility: checker,
		Clock:       postgresadapter.SystemClock{},
		IDGen:       postgresadapter.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(module, logger, ":"+cfg.HTTPPort)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	return a.server.Start()
}

func (a *APIApp) Close() error {
	return a.postgres.Close()
}
