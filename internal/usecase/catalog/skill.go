package catalog

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/portfolio"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type skillSrv struct {
	repo  port.SkillRepository
	cache port.Cache
}

// NewSkillManager constructs a port.SkillManager.
func NewSkillManager(repo port.SkillRepository, cache port.Cache) port.SkillManager {
	return &skillSrv{repo: repo, cache: cache}
}

func (s *skillSrv) CreateSkill(ctx context.Context, in port.SkillInput) (*model.Skill, error) {
	sk := &model.Skill{
		ID:        uuid.NewUUID(),
		Name:      in.Name,
		Icon:      in.Icon,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, sk); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "✅  skill %s created", sk.ID)
	portfolio.Invalidate(ctx, s.cache)
	return sk, nil
}

func (s *skillSrv) UpdateSkill(ctx context.Context, id uuid.UUID, in port.SkillInput) (*model.Skill, error) {
	sk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sk.Name = in.Name
	sk.Icon = in.Icon
	if err := s.repo.Update(ctx, sk); err != nil {
		return nil, err
	}
	portfolio.Invalidate(ctx, s.cache)
	return sk, nil
}

// DeleteSkill removes the skill; its links to other entities cascade.
func (s *skillSrv) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Infof(ctx, "✅  skill %s deleted", id)
	portfolio.Invalidate(ctx, s.cache)
	return nil
}

func (s *skillSrv) ListSkills(ctx context.Context) ([]model.Skill, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Skill{}
	}
	return list, nil
}
