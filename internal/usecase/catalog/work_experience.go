package catalog

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

type workExperienceSrv struct {
	repo  port.WorkExperienceRepository
	cache port.Cache
}

// NewWorkExperienceManager constructs a port.WorkExperienceManager.
func NewWorkExperienceManager(repo port.WorkExperienceRepository, cache port.Cache) port.WorkExperienceManager {
	return &workExperienceSrv{repo: repo, cache: cache}
}

func relationsOf(in port.WorkExperienceInput) (model.RelationSet, error) {
	return reconcile.BuildRelationSet(reconcile.RelationField{
		Relation: model.RelationSkills,
		Field:    "skillId",
		IDs:      in.SkillIDs,
	})
}

func apply(we *model.WorkExperience, in port.WorkExperienceInput) {
	we.Position = in.Position
	we.EmploymentType = in.EmploymentType
	we.Company = in.Company
	we.Location = in.Location
	we.LocationType = in.LocationType
	we.Description = model.StringList(in.Description).Clone()
	we.StartDate = in.StartDate
	we.EndDate = in.EndDate
}

func (s *workExperienceSrv) CreateWorkExperience(ctx context.Context, in port.WorkExperienceInput) (*model.WorkExperience, error) {
	rel, err := relationsOf(in)
	if err != nil {
		return nil, err
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, &reconcile.ValidationError{Field: "endDate", Msg: "end date before start date"}
	}

	now := time.Now().UTC()
	we := &model.WorkExperience{ID: uuid.NewUUID(), CreatedAt: now, UpdatedAt: now}
	apply(we, in)
	if err := s.repo.Create(ctx, we, rel); err != nil {
		return nil, &reconcile.PersistenceError{Op: "create work experience", Err: err}
	}
	logger.Infof(ctx, "✅  work experience %s created", we.ID)
	portfolio.Invalidate(ctx, s.cache)

	return s.repo.GetByID(ctx, we.ID)
}

// UpdateWorkExperience rewrites the row and, when submitted, replaces the
// linked skills in the same transaction.
func (s *workExperienceSrv) UpdateWorkExperience(ctx context.Context, id uuid.UUID, in port.WorkExperienceInput) (*model.WorkExperience, error) {
	rel, err := relationsOf(in)
	if err != nil {
		return nil, err
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, &reconcile.ValidationError{Field: "endDate", Msg: "end date before start date"}
	}

	we, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(we, in)
	we.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, we, rel); err != nil {
		return nil, &reconcile.PersistenceError{Op: "update work experience", Err: err}
	}
	portfolio.Invalidate(ctx, s.cache)

	return s.repo.GetByID(ctx, id)
}

func (s *workExperienceSrv) DeleteWorkExperience(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Infof(ctx, "✅  work experience %s deleted", id)
	portfolio.Invalidate(ctx, s.cache)
	return nil
}

func (s *workExperienceSrv) ListWorkExperiences(ctx context.Context) ([]model.WorkExperience, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.WorkExperience{}
	}
	return list, nil
}
