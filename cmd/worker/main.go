package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/config"
	"github.com/fhuszti/portfolio-ms-go/internal/db"
	"github.com/fhuszti/portfolio-ms-go/internal/filestore"
	workerHandler "github.com/fhuszti/portfolio-ms-go/internal/handler/worker"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/portfolio-ms-go/internal/storage"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	maintenanceSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/maintenance"
	"github.com/hibiken/asynq"
)

// sweepSchedule runs the orphan sweep once a night.
const sweepSchedule = "30 3 * * *"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)
	strg := initStorage(ctx, cfg)

	projectRepo := mariadb.NewProjectRepository(database.DB.DB)
	aboutRepo := mariadb.NewAboutRepository(database.DB.DB)
	dispatcher := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
	defer func() {
		if err := dispatcher.Close(); err != nil {
			logger.Warnf(ctx, "Task client close error: %v", err)
		}
	}()

	// Deletes never optimise, so the store needs no optimiser.
	files := filestore.New(strg, nil, cfg.MaxUploadSize)
	purgeSvc := maintenanceSvc.NewFilePurger(projectRepo, aboutRepo, files)
	sweepSvc := maintenanceSvc.NewOrphanSweeper(projectRepo, aboutRepo, strg, dispatcher, maintenanceSvc.DefaultOrphanMinAge)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypePurgeFile, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParsePurgeFilePayload(t)
		if err != nil {
			return err
		}
		return workerHandler.PurgeFileHandler(ctx, p, purgeSvc)
	})
	mux.HandleFunc(task.TypeSweepOrphans, func(ctx context.Context, t *asynq.Task) error {
		return workerHandler.SweepOrphansHandler(ctx, sweepSvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(ctx, cfg.MariaDB())
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	var strg port.Storage
	if cfg.StorageDriver == config.StorageLocal {
		strg = storage.NewLocalStorage(cfg.LocalStorageRoot)
	} else {
		m, err := storage.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.MinioBucket)
		if err != nil {
			logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
			os.Exit(1)
		}
		strg = m
	}
	if err := strg.Init(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: cfg.WorkerConcurrency})

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register(sweepSchedule, task.NewSweepOrphansTask()); err != nil {
		logger.Errorf(ctx, "❌  Failed to schedule orphan sweep: %v", err)
		os.Exit(1)
	}

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Errorf(context.Background(), "❌  Scheduler failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	done := make(chan struct{})
	go func() {
		scheduler.Shutdown()
		srv.Shutdown()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		logger.Warn(ctx, "⚠️  Worker shutdown timed out")
	}

	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
