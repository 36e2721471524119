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

type sosmedSrv struct {
	repo  port.SosmedRepository
	cache port.Cache
}

// NewSosmedManager constructs a port.SosmedManager.
func NewSosmedManager(repo port.SosmedRepository, cache port.Cache) port.SosmedManager {
	return &sosmedSrv{repo: repo, cache: cache}
}

func (s *sosmedSrv) CreateSosmed(ctx context.Context, in port.SosmedInput) (*model.Sosmed, error) {
	sm := &model.Sosmed{
		ID:        uuid.NewUUID(),
		Name:      in.Name,
		URL:       in.URL,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, sm); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "✅  sosmed %s created", sm.ID)
	portfolio.Invalidate(ctx, s.cache)
	return sm, nil
}

func (s *sosmedSrv) UpdateSosmed(ctx context.Context, id uuid.UUID, in port.SosmedInput) (*model.Sosmed, error) {
	sm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sm.Name = in.Name
	sm.URL = in.URL
	if err := s.repo.Update(ctx, sm); err != nil {
		return nil, err
	}
	portfolio.Invalidate(ctx, s.cache)
	return sm, nil
}

func (s *sosmedSrv) DeleteSosmed(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Infof(ctx, "✅  sosmed %s deleted", id)
	portfolio.Invalidate(ctx, s.cache)
	return nil
}

func (s *sosmedSrv) ListSosmed(ctx context.Context) ([]model.Sosmed, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Sosmed{}
	}
	return list, nil
}
