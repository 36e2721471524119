package project

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/portfolio"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/reconcile"
)

type updateProjectSrv struct {
	repo  port.ProjectRepository
	media *reconcile.Reconciler
	cache port.Cache
}

// NewProjectUpdater constructs a port.ProjectUpdater.
func NewProjectUpdater(repo port.ProjectRepository, media *reconcile.Reconciler, cache port.Cache) port.ProjectUpdater {
	return &updateProjectSrv{repo: repo, media: media, cache: cache}
}

// UpdateProject reconciles the project's media against in.Media, then
// writes fields, media and skills in one transaction. Superseded files are
// removed only after that commit.
func (s *updateProjectSrv) UpdateProject(ctx context.Context, in port.UpdateProjectInput) (*model.Project, error) {
	rel, err := relationsOf(in.ProjectInput)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	previous := p.Media()

	if err := reconcile.VerifyKept(previous.Gallery, in.Media.KeptGallery); err != nil {
		return nil, err
	}

	out, err := s.media.Stage(ctx, previous, in.Media, reconcile.ProjectPolicy)
	if err != nil {
		return nil, err
	}

	apply(p, in.ProjectInput)
	p.SetMedia(out.Media)
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p, rel); err != nil {
		s.media.Discard(ctx, out)
		return nil, &reconcile.PersistenceError{Op: "update project", Err: err}
	}

	if lingering := s.media.Finalise(ctx, out); len(lingering) > 0 {
		logger.Warnf(ctx, "⚠️  project %s updated, %d superseded file(s) left for the worker", p.ID, len(lingering))
	} else {
		logger.Infof(ctx, "✅  project %s updated", p.ID)
	}
	portfolio.Invalidate(ctx, s.cache)

	return s.repo.GetByID(ctx, p.ID)
}
