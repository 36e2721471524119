package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// MockProjectRepository implements port.ProjectRepository for tests.
type MockProjectRepository struct {
	// stored values
	GetOut   *model.Project
	ListOut  []model.Project
	PathsOut []string

	// captured inputs
	Created   *model.Project
	Updated   *model.Project
	Rel       model.RelationSet
	DeletedID uuid.UUID
	GetSlug   string
	GetCalls  int

	// errors
	CreateErr error
	UpdateErr error
	GetErr    error
	ListErr   error
	DeleteErr error
	PathsErr  error
}

func (m *MockProjectRepository) Create(ctx context.Context, p *model.Project, rel model.RelationSet) error {
	cp := *p
	m.Created = &cp
	m.Rel = rel
	if m.CreateErr == nil && m.GetOut == nil {
		m.GetOut = &cp
	}
	return m.CreateErr
}

func (m *MockProjectRepository) Update(ctx context.Context, p *model.Project, rel model.RelationSet) error {
	cp := *p
	m.Updated = &cp
	m.Rel = rel
	if m.UpdateErr == nil {
		m.GetOut = &cp
	}
	return m.UpdateErr
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	m.GetCalls++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut == nil {
		return nil, nil
	}
	cp := *m.GetOut
	return &cp, nil
}

func (m *MockProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	m.GetSlug = slug
	return m.GetByID(ctx, uuid.Nil)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	return m.ListOut, m.ListErr
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockProjectRepository) ListMediaPaths(ctx context.Context) ([]string, error) {
	return m.PathsOut, m.PathsErr
}
