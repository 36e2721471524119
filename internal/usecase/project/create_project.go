package project

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/portfolio"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/reconcile"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type createProjectSrv struct {
	repo  port.ProjectRepository
	media *reconcile.Reconciler
	cache port.Cache
}

// NewProjectCreator constructs a port.ProjectCreator.
func NewProjectCreator(repo port.ProjectRepository, media *reconcile.Reconciler, cache port.Cache) port.ProjectCreator {
	return &createProjectSrv{repo: repo, media: media, cache: cache}
}

// CreateProject stores the uploaded thumbnail and gallery, then inserts the
// project with its skills. The stored files are removed again if the insert
// fails.
func (s *createProjectSrv) CreateProject(ctx context.Context, in port.CreateProjectInput) (*model.Project, error) {
	rel, err := relationsOf(in.ProjectInput)
	if err != nil {
		return nil, err
	}

	out, err := s.media.Stage(ctx, model.MediaSet{}, port.ChangeSet{
		NewThumbnail: in.Thumbnail,
		NewGallery:   in.Gallery,
	}, reconcile.ProjectPolicy)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &model.Project{ID: uuid.NewUUID(), CreatedAt: now, UpdatedAt: now}
	apply(p, in.ProjectInput)
	p.SetMedia(out.Media)

	if err := s.repo.Create(ctx, p, rel); err != nil {
		s.media.Discard(ctx, out)
		return nil, &reconcile.PersistenceError{Op: "create project", Err: err}
	}
	s.media.Finalise(ctx, out)

	logger.Infof(ctx, "✅  project %s (%s) created with %d gallery image(s)", p.ID, p.Slug, len(p.Gallery))
	portfolio.Invalidate(ctx, s.cache)

	return s.repo.GetByID(ctx, p.ID)
}
