package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/storepulse/storepulse/internal/catalog"
	corecfg "github.com/storepulse/storepulse/internal/core/config"
	"github.com/storepulse/storepulse/internal/core/normalize"
	"github.com/storepulse/storepulse/internal/core/storage"
	"github.com/storepulse/storepulse/internal/core/storage/postgres"
	"github.com/storepulse/storepulse/internal/core/storage/sqlite"
	"github.com/storepulse/storepulse/internal/dashboard"
	"github.com/storepulse/storepulse/internal/ingestion"
	"github.com/storepulse/storepulse/internal/logging"
	"github.com/storepulse/storepulse/internal/migrations"
	"github.com/storepulse/storepulse/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	// 0. Bootstrap logger until config is loaded
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)
	slog.Info("Loaded config",
		"database_type", cfg.Database.Type,
		"addr", cfg.Server.Addr(),
		"mode", cfg.Server.Mode,
		"catalog_path", cfg.Catalog.Path)

	// 2. Initialize Storage (migrations run before the adapter validates the schema)
	store, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	// 3. Initialize Dashboard (live records with sample-catalog fallback)
	samples := catalog.NewSource(cfg.Catalog.Path)
	dashboardSvc := dashboard.NewService(store, samples, normalize.NewNormalizer())
	dashboardHandler := dashboard.NewHandler(dashboardSvc)

	// 4. Initialize Ingestion
	ingestionSvc := ingestion.NewService(store, cfg.Server.MaxBodySizeMB, cfg.Ingestion.MaxBatchSize)

	// 5. Initialize Server
	srv := server.New(cfg.Server.Addr(), store, cfg.Server.Mode)
	dashboardHandler.RegisterRoutes(srv.Engine)
	ingestionSvc.RegisterRoutes(srv.Engine)

	// 6. Start Services
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openStore opens the configured database, applies migrations and wraps it
// in the matching RecordStore.
func openStore(cfg corecfg.DatabaseConfig) (storage.RecordStore, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Type {
	case migrations.DatabasePostgres:
		db, err = postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	case migrations.DatabaseSQLite:
		db, err = sqlite.Open(cfg.DSN, cfg.MaxOpenConns)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := migrations.RunMigrations(db, cfg.Type, cfg.AutoMigrate); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	var store storage.RecordStore
	switch cfg.Type {
	case migrations.DatabasePostgres:
		store, err = postgres.NewAdapter(db)
	default:
		store, err = sqlite.NewAdapter(db)
	}
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
