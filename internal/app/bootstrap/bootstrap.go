package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	accessgate "askboard/contexts/identity-access/access-gate"
	gatepostgres "askboard/contexts/identity-access/access-gate/adapters/postgres"
	boardservice "askboard/contexts/knowledge-exchange/board-service"
	boardpostgres "askboard/contexts/knowledge-exchange/board-service/adapters/postgres"
	"askboard/internal/platform/config"
	"askboard/internal/platform/db"
	"askboard/internal/platform/httpserver"
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

	gateModule := accessgate.NewModule(accessgate.Dependencies{
		Sessions: gatepostgres.NewRepository(pg.DB, logger),
		Logger:   logger,
	})

	boardRepo := boardpostgres.NewRepository(pg.DB, logger)
	boardModule := boardservice.NewModule(boardservice.Dependencies{
		Questions:   boardRepo,
		Answers:     boardRepo,
		Users:       boardRepo,
		Clock:       boardpostgres.SystemClock{},
		IDGenerator: boardpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(gateModule, boardModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
