package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// MockAboutRepository implements port.AboutRepository for tests.
type MockAboutRepository struct {
	// stored values
	GetOut   *model.About
	ListOut  []model.About
	PathsOut []string

	// captured inputs
	Created   *model.About
	Updated   *model.About
	Rel       model.RelationSet
	DeletedID uuid.UUID

	// errors
	CreateErr error
	UpdateErr error
	GetErr    error
	ListErr   error
	DeleteErr error
	PathsErr  error
}

func (m *MockAboutRepository) Create(ctx context.Context, a *model.About, rel model.RelationSet) error {
	cp := *a
	m.Created = &cp
	m.Rel = rel
	if m.CreateErr == nil && m.GetOut == nil {
		m.GetOut = &cp
	}
	return m.CreateErr
}

func (m *MockAboutRepository) Update(ctx context.Context, a *model.About, rel model.RelationSet) error {
	cp := *a
	m.Updated = &cp
	m.Rel = rel
	if m.UpdateErr == nil {
		m.GetOut = &cp
	}
	return m.UpdateErr
}

func (m *MockAboutRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.About, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut == nil {
		return nil, nil
	}
	cp := *m.GetOut
	return &cp, nil
}

func (m *MockAboutRepository) List(ctx context.Context) ([]model.About, error) {
	return m.ListOut, m.ListErr
}

func (m *MockAboutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockAboutRepository) ListMediaPaths(ctx context.Context) ([]string, error) {
	return m.PathsOut, m.PathsErr
}
