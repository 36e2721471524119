package worker

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/task"
)

// PurgeFileHandler handles a purge-file task by delegating to the purger.
// Returning an error makes asynq retry the task.
func PurgeFileHandler(ctx context.Context, p task.PurgeFilePayload, svc port.FilePurger) error {
	if err := svc.PurgeFile(ctx, p.Path); err != nil {
		logger.Errorf(ctx, "❌  Failed to purge file %q: %v", p.Path, err)
		return err
	}

	logger.Infof(ctx, "✅  Successfully purged file %q", p.Path)
	return nil
}

// SweepOrphansHandler handles the periodic orphan sweep task.
func SweepOrphansHandler(ctx context.Context, svc port.OrphanSweeper) error {
	n, err := svc.SweepOrphans(ctx)
	if err != nil {
		logger.Errorf(ctx, "❌  Orphan sweep failed: %v", err)
		return err
	}

	logger.Infof(ctx, "✅  Orphan sweep scheduled %d file(s) for removal", n)
	return nil
}
