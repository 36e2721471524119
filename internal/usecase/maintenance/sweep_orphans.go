package maintenance

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/filestore"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/metrics"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/reconcile"
)

// DefaultOrphanMinAge leaves recently stored files alone: they may belong to
// a reconciliation whose commit has not happened yet.
const DefaultOrphanMinAge = time.Hour

var mediaFolders = []string{reconcile.FolderThumbnails, reconcile.FolderGallery, reconcile.FolderProfile}

type sweepOrphansSrv struct {
	refs   *references
	strg   port.Storage
	tasks  port.TaskDispatcher
	minAge time.Duration
	now    func() time.Time
}

// NewOrphanSweeper constructs a port.OrphanSweeper.
func NewOrphanSweeper(projects port.ProjectRepository, abouts port.AboutRepository, strg port.Storage, tasks port.TaskDispatcher, minAge time.Duration) port.OrphanSweeper {
	return &sweepOrphansSrv{
		refs:   &references{projects: projects, abouts: abouts},
		strg:   strg,
		tasks:  tasks,
		minAge: minAge,
		now:    time.Now,
	}
}

// SweepOrphans enqueues a purge for every stored media file older than the
// minimum age that no entity references. It returns the number enqueued.
func (s *sweepOrphansSrv) SweepOrphans(ctx context.Context) (int, error) {
	live, err := s.refs.load(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-s.minAge)
	count := 0
	for _, folder := range mediaFolders {
		files, err := s.strg.ListFiles(ctx, folder+"/")
		if err != nil {
			return count, err
		}
		for _, f := range files {
			if _, ok := live[f.Key]; ok {
				continue
			}
			if f.LastModified.After(cutoff) {
				continue
			}
			metrics.OrphansFound.Inc()
			path := filestore.PathFromKey(f.Key)
			if err := s.tasks.EnqueuePurgeFile(ctx, path); err != nil {
				metrics.PurgeTasksEnqueued.WithLabelValues("failed").Inc()
				logger.Errorf(ctx, "❌  failed to enqueue purge of orphan %q: %v", path, err)
				continue
			}
			metrics.PurgeTasksEnqueued.WithLabelValues("ok").Inc()
			count++
		}
	}

	logger.Infof(ctx, "✅  orphan sweep enqueued %d purge(s)", count)
	return count, nil
}
