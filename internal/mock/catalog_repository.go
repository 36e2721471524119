package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// MockSkillRepository implements port.SkillRepository for tests.
type MockSkillRepository struct {
	GetOut  *model.Skill
	ListOut []model.Skill

	Created   *model.Skill
	Updated   *model.Skill
	DeletedID uuid.UUID

	CreateErr error
	UpdateErr error
	GetErr    error
	ListErr   error
	DeleteErr error
}

func (m *MockSkillRepository) Create(ctx context.Context, s *model.Skill) error {
	m.Created = s
	return m.CreateErr
}

func (m *MockSkillRepository) Update(ctx context.Context, s *model.Skill) error {
	m.Updated = s
	return m.UpdateErr
}

func (m *MockSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	return m.GetOut, m.GetErr
}

func (m *MockSkillRepository) List(ctx context.Context) ([]model.Skill, error) {
	return m.ListOut, m.ListErr
}

func (m *MockSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeletedID = id
	return m.DeleteErr
}

// MockSosmedRepository implements port.SosmedRepository for tests.
type MockSosmedRepository struct {
	GetOut  *model.Sosmed
	ListOut []model.Sosmed

	Created   *model.Sosmed
	Updated   *model.Sosmed
	DeletedID uuid.UUID

	CreateErr error
	UpdateErr error
	GetErr    error
	ListErr   error
	DeleteErr error
}

func (m *MockSosmedRepository) Create(ctx context.Context, s *model.Sosmed) error {
	m.Created = s
	return m.CreateErr
}

func (m *MockSosmedRepository) Update(ctx context.Context, s *model.Sosmed) error {
	m.Updated = s
	return m.UpdateErr
}

func (m *MockSosmedRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Sosmed, error) {
	return m.GetOut, m.GetErr
}

func (m *MockSosmedRepository) List(ctx context.Context) ([]model.Sosmed, error) {
	return m.ListOut, m.ListErr
}

func (m *MockSosmedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeletedID = id
	return m.DeleteErr
}

// MockWorkExperienceRepository implements port.WorkExperienceRepository for tests.
type MockWorkExperienceRepository struct {
	GetOut  *model.WorkExperience
	ListOut []model.WorkExperience

	Created   *model.WorkExperience
	Updated   *model.WorkExperience
	Rel       model.RelationSet
	DeletedID uuid.UUID

	CreateErr error
	UpdateErr error
	GetErr    error
	ListErr   error
	DeleteErr error
}

func (m *MockWorkExperienceRepository) Create(ctx context.Context, we *model.WorkExperience, rel model.RelationSet) error {
	m.Created = we
	m.Rel = rel
	if m.CreateErr == nil && m.GetOut == nil {
		m.GetOut = we
	}
	return m.CreateErr
}

func (m *MockWorkExperienceRepository) Update(ctx context.Context, we *model.WorkExperience, rel model.RelationSet) error {
	m.Updated = we
	m.Rel = rel
	return m.UpdateErr
}

func (m *MockWorkExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.WorkExperience, error) {
	return m.GetOut, m.GetErr
}

func (m *MockWorkExperienceRepository) List(ctx context.Context) ([]model.WorkExperience, error) {
	return m.ListOut, m.ListErr
}

func (m *MockWorkExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeletedID = id
	return m.DeleteErr
}
