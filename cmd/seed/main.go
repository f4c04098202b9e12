package main

import (
	"log/slog"
	"os"

	"github.com/complytrack/complytrack/internal/config"
	"github.com/complytrack/complytrack/internal/db"
	"github.com/complytrack/complytrack/internal/logger"
	"github.com/complytrack/complytrack/internal/repository"
	"github.com/complytrack/complytrack/internal/service"
)

// Resets the database to the demo dataset. Intended for local development
// and fresh deployments; everything it does is also reachable via POST /api/setup.
func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	conn, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(conn)

	err = db.RunMigrations(conn.DB, cfg.DBDriver)
	if err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	obligations := repository.NewObligationRepository(conn)
	alerts := repository.NewAlertRepository(conn)
	documents := repository.NewDocumentRepository(conn)

	seeder := service.NewSeedService(obligations, alerts, documents, cfg.AnniversaryMonth)
	err = seeder.Run()
	if err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	slog.Info("database seeded", "driver", cfg.DBDriver)
}
