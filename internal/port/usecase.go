package port

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// Relation identifier lists below are nil when the field was not submitted,
// which leaves the stored relation untouched. An empty non-nil list clears it.

// SkillManager maintains skills.
type SkillManager interface {
	CreateSkill(ctx context.Context, in SkillInput) (*model.Skill, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, in SkillInput) (*model.Skill, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
	ListSkills(ctx context.Context) ([]model.Skill, error)
}
type SkillInput struct {
	Name string
	Icon string
}

// SosmedManager maintains social media links.
type SosmedManager interface {
	CreateSosmed(ctx context.Context, in SosmedInput) (*model.Sosmed, error)
	UpdateSosmed(ctx context.Context, id uuid.UUID, in SosmedInput) (*model.Sosmed, error)
	DeleteSosmed(ctx context.Context, id uuid.UUID) error
	ListSosmed(ctx context.Context) ([]model.Sosmed, error)
}
type SosmedInput struct {
	Name string
	URL  string
}

// WorkExperienceManager maintains work experiences and their skill links.
type WorkExperienceManager interface {
	CreateWorkExperience(ctx context.Context, in WorkExperienceInput) (*model.WorkExperience, error)
	UpdateWorkExperience(ctx context.Context, id uuid.UUID, in WorkExperienceInput) (*model.WorkExperience, error)
	DeleteWorkExperience(ctx context.Context, id uuid.UUID) error
	ListWorkExperiences(ctx context.Context) ([]model.WorkExperience, error)
}
type WorkExperienceInput struct {
	Position       string
	EmploymentType string
	Company        string
	Location       string
	LocationType   string
	Description    []string
	StartDate      time.Time
	EndDate        *time.Time
	SkillIDs       []string
}

// ProjectCreator creates a project together with its thumbnail and gallery.
type ProjectCreator interface {
	CreateProject(ctx context.Context, in CreateProjectInput) (*model.Project, error)
}

// ProjectUpdater updates a project and reconciles its media and skills.
type ProjectUpdater interface {
	UpdateProject(ctx context.Context, in UpdateProjectInput) (*model.Project, error)
}

// ProjectDeleter deletes a project and schedules every media path for removal.
type ProjectDeleter interface {
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// ProjectGetter reads projects.
type ProjectGetter interface {
	GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
}

type ProjectInput struct {
	Title          string
	Slug           string
	Tagline        string
	Description    string
	Category       string
	Features       []string
	Libraries      []string
	Background     string
	Solution       string
	Challenge      string
	BusinessImpact *string
	GithubURL      string
	LiveURL        string
	SkillIDs       []string
}
type CreateProjectInput struct {
	ProjectInput
	Thumbnail *Upload
	Gallery   []Upload
}
type UpdateProjectInput struct {
	ID uuid.UUID
	ProjectInput
	Media ChangeSet
}

// AboutManager maintains about profiles.
type AboutManager interface {
	CreateAbout(ctx context.Context, in CreateAboutInput) (*model.About, error)
	UpdateAbout(ctx context.Context, in UpdateAboutInput) (*model.About, error)
	DeleteAbout(ctx context.Context, id uuid.UUID) error
	ListAbouts(ctx context.Context) ([]model.About, error)
}
type AboutInput struct {
	Name              string
	JobTitle          string
	Introduction      string
	SkillIDs          []string
	SosmedIDs         []string
	ProjectIDs        []string
	WorkExperienceIDs []string
}
type CreateAboutInput struct {
	AboutInput
	Profile *Upload
}
type UpdateAboutInput struct {
	ID uuid.UUID
	AboutInput
	Profile        *Upload
	ProfileDeleted bool
}

// PortfolioGetter assembles the public landing page.
type PortfolioGetter interface {
	GetPortfolio(ctx context.Context) (*PortfolioOutput, error)
}
type PortfolioOutput struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	About       []model.About   `json:"about"`
	Projects    []model.Project `json:"projects"`
}

// FilePurger removes a superseded file whose synchronous delete failed.
type FilePurger interface {
	PurgeFile(ctx context.Context, path string) error
}

// OrphanSweeper finds stored files no entity references and schedules their removal.
type OrphanSweeper interface {
	SweepOrphans(ctx context.Context) (int, error)
}
