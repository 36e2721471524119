package about

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

// NewReconciler returns the media reconciler for about profiles. The
// profile picture takes the thumbnail slot; there is no gallery.
func NewReconciler(files port.FileStore, tasks port.TaskDispatcher) *reconcile.Reconciler {
	return reconcile.NewReconciler("about", files, tasks, reconcile.Folders{
		Thumbnail: reconcile.FolderProfile,
		Gallery:   reconcile.FolderProfile,
	})
}

type aboutSrv struct {
	repo  port.AboutRepository
	media *reconcile.Reconciler
	cache port.Cache
}

// NewAboutManager constructs a port.AboutManager.
func NewAboutManager(repo port.AboutRepository, media *reconcile.Reconciler, cache port.Cache) port.AboutManager {
	return &aboutSrv{repo: repo, media: media, cache: cache}
}

func relationsOf(in port.AboutInput) (model.RelationSet, error) {
	return reconcile.BuildRelationSet(
		reconcile.RelationField{Relation: model.RelationSkills, Field: "skillId", IDs: in.SkillIDs},
		reconcile.RelationField{Relation: model.RelationSosmed, Field: "sosmed", IDs: in.SosmedIDs},
		reconcile.RelationField{Relation: model.RelationProjects, Field: "projects", IDs: in.ProjectIDs},
		reconcile.RelationField{Relation: model.RelationWorkExperiences, Field: "workExperiences", IDs: in.WorkExperienceIDs},
	)
}

func apply(a *model.About, in port.AboutInput) {
	a.Name = in.Name
	a.JobTitle = in.JobTitle
	a.Introduction = in.Introduction
}

func (s *aboutSrv) CreateAbout(ctx context.Context, in port.CreateAboutInput) (*model.About, error) {
	rel, err := relationsOf(in.AboutInput)
	if err != nil {
		return nil, err
	}

	out, err := s.media.Stage(ctx, model.MediaSet{}, port.ChangeSet{NewThumbnail: in.Profile}, reconcile.AboutPolicy)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a := &model.About{ID: uuid.NewUUID(), CreatedAt: now, UpdatedAt: now}
	apply(a, in.AboutInput)
	a.SetMedia(out.Media)

	if err := s.repo.Create(ctx, a, rel); err != nil {
		s.media.Discard(ctx, out)
		return nil, &reconcile.PersistenceError{Op: "create about", Err: err}
	}
	s.media.Finalise(ctx, out)

	logger.Infof(ctx, "✅  about %s created", a.ID)
	portfolio.Invalidate(ctx, s.cache)

	return s.repo.GetByID(ctx, a.ID)
}

// UpdateAbout replaces the profile picture when one is uploaded, clears it
// when ProfileDeleted is set, and rewrites every submitted relation in the
// same transaction as the row.
func (s *aboutSrv) UpdateAbout(ctx context.Context, in port.UpdateAboutInput) (*model.About, error) {
	rel, err := relationsOf(in.AboutInput)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	out, err := s.media.Stage(ctx, a.Media(), port.ChangeSet{
		NewThumbnail:     in.Profile,
		ThumbnailDeleted: in.ProfileDeleted,
	}, reconcile.AboutPolicy)
	if err != nil {
		return nil, err
	}

	apply(a, in.AboutInput)
	a.SetMedia(out.Media)
	a.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, a, rel); err != nil {
		s.media.Discard(ctx, out)
		return nil, &reconcile.PersistenceError{Op: "update about", Err: err}
	}

	if lingering := s.media.Finalise(ctx, out); len(lingering) > 0 {
		logger.Warnf(ctx, "⚠️  about %s updated, %d superseded file(s) left for the worker", a.ID, len(lingering))
	} else {
		logger.Infof(ctx, "✅  about %s updated", a.ID)
	}
	portfolio.Invalidate(ctx, s.cache)

	return s.repo.GetByID(ctx, a.ID)
}

func (s *aboutSrv) DeleteAbout(ctx context.Context, id uuid.UUID) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return &reconcile.PersistenceError{Op: "delete about", Err: err}
	}
	s.media.Purge(ctx, a.Media())

	logger.Infof(ctx, "✅  about %s deleted", id)
	portfolio.Invalidate(ctx, s.cache)
	return nil
}

func (s *aboutSrv) ListAbouts(ctx context.Context) ([]model.About, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.About{}
	}
	return list, nil
}
