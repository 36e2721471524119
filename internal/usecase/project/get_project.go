package project

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type getProjectSrv struct {
	repo port.ProjectRepository
}

// NewProjectGetter constructs a port.ProjectGetter.
func NewProjectGetter(repo port.ProjectRepository) port.ProjectGetter {
	return &getProjectSrv{repo: repo}
}

func (s *getProjectSrv) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *getProjectSrv) GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *getProjectSrv) ListProjects(ctx context.Context) ([]model.Project, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Project{}
	}
	return list, nil
}
