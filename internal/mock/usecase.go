package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// MockSkillManager implements port.SkillManager for tests.
type MockSkillManager struct {
	Out     *model.Skill
	ListOut []model.Skill
	Err     error

	Called bool
	ID     uuid.UUID
	In     port.SkillInput
}

func (m *MockSkillManager) CreateSkill(ctx context.Context, in port.SkillInput) (*model.Skill, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

func (m *MockSkillManager) UpdateSkill(ctx context.Context, id uuid.UUID, in port.SkillInput) (*model.Skill, error) {
	m.Called = true
	m.ID = id
	m.In = in
	return m.Out, m.Err
}

func (m *MockSkillManager) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

func (m *MockSkillManager) ListSkills(ctx context.Context) ([]model.Skill, error) {
	m.Called = true
	return m.ListOut, m.Err
}

// MockSosmedManager implements port.SosmedManager for tests.
type MockSosmedManager struct {
	Out     *model.Sosmed
	ListOut []model.Sosmed
	Err     error

	Called bool
	ID     uuid.UUID
	In     port.SosmedInput
}

func (m *MockSosmedManager) CreateSosmed(ctx context.Context, in port.SosmedInput) (*model.Sosmed, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

func (m *MockSosmedManager) UpdateSosmed(ctx context.Context, id uuid.UUID, in port.SosmedInput) (*model.Sosmed, error) {
	m.Called = true
	m.ID = id
	m.In = in
	return m.Out, m.Err
}

func (m *MockSosmedManager) DeleteSosmed(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

func (m *MockSosmedManager) ListSosmed(ctx context.Context) ([]model.Sosmed, error) {
	m.Called = true
	return m.ListOut, m.Err
}

// MockWorkExperienceManager implements port.WorkExperienceManager for tests.
type MockWorkExperienceManager struct {
	Out     *model.WorkExperience
	ListOut []model.WorkExperience
	Err     error

	Called bool
	ID     uuid.UUID
	In     port.WorkExperienceInput
}

func (m *MockWorkExperienceManager) CreateWorkExperience(ctx context.Context, in port.WorkExperienceInput) (*model.WorkExperience, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

func (m *MockWorkExperienceManager) UpdateWorkExperience(ctx context.Context, id uuid.UUID, in port.WorkExperienceInput) (*model.WorkExperience, error) {
	m.Called = true
	m.ID = id
	m.In = in
	return m.Out, m.Err
}

func (m *MockWorkExperienceManager) DeleteWorkExperience(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

func (m *MockWorkExperienceManager) ListWorkExperiences(ctx context.Context) ([]model.WorkExperience, error) {
	m.Called = true
	return m.ListOut, m.Err
}

// MockProjectService implements the project use case ports for tests.
type MockProjectService struct {
	Out     *model.Project
	ListOut []model.Project
	Err     error

	Called    bool
	ID        uuid.UUID
	Slug      string
	CreateIn  port.CreateProjectInput
	UpdateIn  port.UpdateProjectInput
	Filenames []string
}

func (m *MockProjectService) CreateProject(ctx context.Context, in port.CreateProjectInput) (*model.Project, error) {
	m.Called = true
	m.CreateIn = in
	if in.Thumbnail != nil {
		m.Filenames = append(m.Filenames, in.Thumbnail.Filename)
	}
	for _, f := range in.Gallery {
		m.Filenames = append(m.Filenames, f.Filename)
	}
	return m.Out, m.Err
}

func (m *MockProjectService) UpdateProject(ctx context.Context, in port.UpdateProjectInput) (*model.Project, error) {
	m.Called = true
	m.UpdateIn = in
	if in.Media.NewThumbnail != nil {
		m.Filenames = append(m.Filenames, in.Media.NewThumbnail.Filename)
	}
	for _, f := range in.Media.NewGallery {
		m.Filenames = append(m.Filenames, f.Filename)
	}
	return m.Out, m.Err
}

func (m *MockProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

func (m *MockProjectService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

func (m *MockProjectService) GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error) {
	m.Called = true
	m.Slug = slug
	return m.Out, m.Err
}

func (m *MockProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	m.Called = true
	return m.ListOut, m.Err
}

// MockAboutManager implements port.AboutManager for tests.
type MockAboutManager struct {
	Out     *model.About
	ListOut []model.About
	Err     error

	Called   bool
	ID       uuid.UUID
	CreateIn port.CreateAboutInput
	UpdateIn port.UpdateAboutInput
}

func (m *MockAboutManager) CreateAbout(ctx context.Context, in port.CreateAboutInput) (*model.About, error) {
	m.Called = true
	m.CreateIn = in
	return m.Out, m.Err
}

func (m *MockAboutManager) UpdateAbout(ctx context.Context, in port.UpdateAboutInput) (*model.About, error) {
	m.Called = true
	m.UpdateIn = in
	return m.Out, m.Err
}

func (m *MockAboutManager) DeleteAbout(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

func (m *MockAboutManager) ListAbouts(ctx context.Context) ([]model.About, error) {
	m.Called = true
	return m.ListOut, m.Err
}

// MockPortfolioGetter implements port.PortfolioGetter for tests.
type MockPortfolioGetter struct {
	Out    *port.PortfolioOutput
	Err    error
	Called int
}

func (m *MockPortfolioGetter) GetPortfolio(ctx context.Context) (*port.PortfolioOutput, error) {
	m.Called++
	return m.Out, m.Err
}

// MockFilePurger implements port.FilePurger for tests.
type MockFilePurger struct {
	Err    error
	Called bool
	Path   string
}

func (m *MockFilePurger) PurgeFile(ctx context.Context, path string) error {
	m.Called = true
	m.Path = path
	return m.Err
}
