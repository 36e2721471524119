package testutil

import (
	"context"
	"database/sql"

	"github.com/fhuszti/portfolio-ms-go/internal/filestore"
	workerHandler "github.com/fhuszti/portfolio-ms-go/internal/handler/worker"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
	maintenanceSvc "github.com/fhuszti/portfolio-ms-go/internal/usecase/maintenance"
	"github.com/hibiken/asynq"
)

// StartWorker starts an asynq worker processing purge tasks.
// It returns a function to gracefully shut down the worker.
func StartWorker(db *sql.DB, strg port.Storage, redisAddr string) func() {
	purgeSvc := maintenanceSvc.NewFilePurger(
		mariadb.NewProjectRepository(db),
		mariadb.NewAboutRepository(db),
		filestore.New(strg, nil, 0),
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypePurgeFile, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParsePurgeFilePayload(t)
		if err != nil {
			return err
		}
		return workerHandler.PurgeFileHandler(ctx, p, purgeSvc)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 2})
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}
}
