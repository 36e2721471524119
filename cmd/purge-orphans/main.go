package main

import (
	"context"
	"flag"
	"os"

	"github.com/fhuszti/portfolio-ms-go/internal/config"
	"github.com/fhuszti/portfolio-ms-go/internal/db"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/portfolio-ms-go/internal/storage"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	maintenanceSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/maintenance"
)

func main() {
	minAge := flag.Duration("min-age", maintenanceSvc.DefaultOrphanMinAge, "only purge files older than this")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "❌  Redis not configured: this command requires a running Redis instance")
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.MariaDB())
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	dispatcher := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
	defer func() { _ = dispatcher.Close() }()

	sweeper := maintenanceSvc.NewOrphanSweeper(
		mariadb.NewProjectRepository(database.DB.DB),
		mariadb.NewAboutRepository(database.DB.DB),
		openStorage(ctx, cfg),
		dispatcher,
		*minAge,
	)
	n, err := sweeper.SweepOrphans(ctx)
	if err != nil {
		logger.Errorf(ctx, "❌  Orphan sweep failed: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "✅  Enqueued %d orphaned file(s) for removal", n)
}

func openStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	if cfg.StorageDriver == config.StorageLocal {
		return storage.NewLocalStorage(cfg.LocalStorageRoot)
	}
	strg, err := storage.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.MinioBucket)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}
	return strg
}
