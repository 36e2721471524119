package maintenance

import (
	"context"
	"fmt"

	"github.com/fhuszti/portfolio-ms-go/internal/filestore"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/metrics"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type purgeFileSrv struct {
	refs  *references
	files port.FileStore
}

// NewFilePurger constructs a port.FilePurger.
func NewFilePurger(projects port.ProjectRepository, abouts port.AboutRepository, files port.FileStore) port.FilePurger {
	return &purgeFileSrv{refs: &references{projects: projects, abouts: abouts}, files: files}
}

// PurgeFile removes path unless an entity references it again by the time
// the task runs. Removing an absent file succeeds.
func (s *purgeFileSrv) PurgeFile(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	live, err := s.refs.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := live[filestore.KeyFromPath(path)]; ok {
		logger.Warnf(ctx, "⚠️  %q is referenced again, skipping purge", path)
		return nil
	}

	if err := s.files.Delete(ctx, path); err != nil {
		metrics.FilesDeletedTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("delete %q: %w", path, err)
	}
	metrics.FilesDeletedTotal.WithLabelValues("ok").Inc()
	return nil
}

// references collects the object keys every project and about points at.
type references struct {
	projects port.ProjectRepository
	abouts   port.AboutRepository
}

func (r *references) load(ctx context.Context) (map[string]struct{}, error) {
	projectPaths, err := r.projects.ListMediaPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("list project media: %w", err)
	}
	aboutPaths, err := r.abouts.ListMediaPaths(ctx)
	if err != nil {
		return nil, fmt.Errorf("list about media: %w", err)
	}

	live := make(map[string]struct{}, len(projectPaths)+len(aboutPaths))
	for _, paths := range [][]string{projectPaths, aboutPaths} {
		for _, p := range paths {
			if p == "" {
				continue
			}
			live[filestore.KeyFromPath(p)] = struct{}{}
		}
	}
	return live, nil
}
