package project

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/portfolio"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/reconcile"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type deleteProjectSrv struct {
	repo  port.ProjectRepository
	media *reconcile.Reconciler
	cache port.Cache
}

// NewProjectDeleter constructs a port.ProjectDeleter.
func NewProjectDeleter(repo port.ProjectRepository, media *reconcile.Reconciler, cache port.Cache) port.ProjectDeleter {
	return &deleteProjectSrv{repo: repo, media: media, cache: cache}
}

// DeleteProject removes the row first, then every file it referenced.
func (s *deleteProjectSrv) DeleteProject(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return &reconcile.PersistenceError{Op: "delete project", Err: err}
	}

	if lingering := s.media.Purge(ctx, p.Media()); len(lingering) > 0 {
		logger.Warnf(ctx, "⚠️  project %s deleted, %d file(s) left for the worker", id, len(lingering))
	} else {
		logger.Infof(ctx, "✅  project %s deleted", id)
	}
	portfolio.Invalidate(ctx, s.cache)
	return nil
}
