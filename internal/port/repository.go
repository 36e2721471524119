package port

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// SkillRepository defines persistence operations for skills.
type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	List(ctx context.Context) ([]model.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SosmedRepository defines persistence operations for social media links.
type SosmedRepository interface {
	Create(ctx context.Context, sosmed *model.Sosmed) error
	Update(ctx context.Context, sosmed *model.Sosmed) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Sosmed, error)
	List(ctx context.Context) ([]model.Sosmed, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkExperienceRepository defines persistence operations for work experiences.
// Create and Update write the row and the relations in one transaction; a
// relation absent from rel is left untouched.
type WorkExperienceRepository interface {
	Create(ctx context.Context, we *model.WorkExperience, rel model.RelationSet) error
	Update(ctx context.Context, we *model.WorkExperience, rel model.RelationSet) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.WorkExperience, error)
	List(ctx context.Context) ([]model.WorkExperience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project, rel model.RelationSet) error
	Update(ctx context.Context, project *model.Project, rel model.RelationSet) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListMediaPaths(ctx context.Context) ([]string, error)
}

// AboutRepository defines persistence operations for about profiles.
type AboutRepository interface {
	Create(ctx context.Context, about *model.About, rel model.RelationSet) error
	Update(ctx context.Context, about *model.About, rel model.RelationSet) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.About, error)
	List(ctx context.Context) ([]model.About, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListMediaPaths(ctx context.Context) ([]string, error)
}
