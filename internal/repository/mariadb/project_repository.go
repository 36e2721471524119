package mariadb

import (
	"context"
	"database/sql"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	projectColumns      = "id, title, slug, tagline, description, category, features, libraries, background, solution, challenge, business_impact, github_url, live_url, thumbnail, gallery, created_at, updated_at"
	selectProjectByID   = "SELECT " + projectColumns + " FROM projects WHERE id = ?"
	selectProjectBySlug = "SELECT " + projectColumns + " FROM projects WHERE slug = ?"
	selectAllProjects   = "SELECT " + projectColumns + " FROM projects ORDER BY created_at DESC"
	selectProjectsIn    = "SELECT " + projectColumns + " FROM projects WHERE id IN (?) ORDER BY created_at DESC"
)

var projectRelations = map[model.Relation]linkTable{
	model.RelationSkills: projectSkills,
}

type ProjectRepository struct {
	db *sqlx.DB
}

// compile-time check: *ProjectRepository must satisfy port.ProjectRepository
var _ port.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: sqlx.NewDb(db, "mysql")}
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project, rel model.RelationSet) error {
	logger.Infof(ctx, "creating database record for project #%s (%q)...", p.ID, p.Slug)

	return mapErr(withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
      INSERT INTO projects
        (id, title, slug, tagline, description, category, features, libraries, background, solution, challenge,
         business_impact, github_url, live_url, thumbnail, gallery, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `,
			p.ID, p.Title, p.Slug, p.Tagline, p.Description, p.Category, p.Features, p.Libraries,
			p.Background, p.Solution, p.Challenge, p.BusinessImpact, p.GithubURL, p.LiveURL,
			p.Thumbnail, p.Gallery, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return mapErr(err)
		}
		return replaceRelations(ctx, tx, projectRelations, p.ID, rel)
	}))
}

// Update writes the fields, the media set and the relations of p in one
// transaction. Either all of it is stored or none of it.
func (r *ProjectRepository) Update(ctx context.Context, p *model.Project, rel model.RelationSet) error {
	logger.Infof(ctx, "updating database record for project #%s...", p.ID)

	return mapErr(withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := updateProjectFields(ctx, tx, p); err != nil {
			return err
		}
		if err := updateProjectMediaSet(ctx, tx, p.ID, p.Media()); err != nil {
			return err
		}
		return replaceRelations(ctx, tx, projectRelations, p.ID, rel)
	}))
}

func updateProjectFields(ctx context.Context, tx *sqlx.Tx, p *model.Project) error {
	_, err := tx.ExecContext(ctx, `
      UPDATE projects
      SET
        title           = ?,
        slug            = ?,
        tagline         = ?,
        description     = ?,
        category        = ?,
        features        = ?,
        libraries       = ?,
        background      = ?,
        solution        = ?,
        challenge       = ?,
        business_impact = ?,
        github_url      = ?,
        live_url        = ?,
        updated_at      = ?
      WHERE id = ?
    `,
		p.Title, p.Slug, p.Tagline, p.Description, p.Category, p.Features, p.Libraries,
		p.Background, p.Solution, p.Challenge, p.BusinessImpact, p.GithubURL, p.LiveURL, p.UpdatedAt,
		p.ID, // WHERE clause
	)
	return mapErr(err)
}

func updateProjectMediaSet(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, m model.MediaSet) error {
	gallery := m.Gallery
	if gallery == nil {
		gallery = model.StringList{}
	}
	_, err := tx.ExecContext(ctx, "UPDATE projects SET thumbnail = ?, gallery = ? WHERE id = ?", m.Thumbnail, gallery, id)
	return mapErr(err)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return r.getOne(ctx, selectProjectByID, id)
}

func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return r.getOne(ctx, selectProjectBySlug, slug)
}

func (r *ProjectRepository) getOne(ctx context.Context, query string, arg any) (*model.Project, error) {
	var p model.Project
	if err := r.db.GetContext(ctx, &p, query, arg); err != nil {
		return nil, mapErr(err)
	}
	list := []model.Project{p}
	if err := attachProjectSkills(ctx, r.db, list); err != nil {
		return nil, mapErr(err)
	}
	return &list[0], nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	out := []model.Project{}
	if err := r.db.SelectContext(ctx, &out, selectAllProjects); err != nil {
		return nil, mapErr(err)
	}
	if err := attachProjectSkills(ctx, r.db, out); err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// Delete removes the project row. Its files are the caller's concern.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Infof(ctx, "deleting database record for project #%s...", id)

	res, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return mapErr(err)
	}
	return rowsAffected(res)
}

type projectMediaRow struct {
	Thumbnail string           `db:"thumbnail"`
	Gallery   model.StringList `db:"gallery"`
}

// ListMediaPaths returns every path referenced by any project.
func (r *ProjectRepository) ListMediaPaths(ctx context.Context) ([]string, error) {
	var rows []projectMediaRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT thumbnail, gallery FROM projects"); err != nil {
		return nil, mapErr(err)
	}
	var paths []string
	for _, row := range rows {
		paths = append(paths, model.MediaSet{Thumbnail: row.Thumbnail, Gallery: row.Gallery}.Paths()...)
	}
	return paths, nil
}

func attachProjectSkills(ctx context.Context, q sqlx.QueryerContext, list []model.Project) error {
	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	links, targets, err := loadLinks(ctx, q, projectSkills, ids)
	if err != nil {
		return err
	}
	skills, err := selectIn[model.Skill](ctx, q, selectSkillsIn, targets)
	if err != nil {
		return err
	}
	for i := range list {
		list[i].Skills = attach(links[list[i].ID], skills, skillID)
	}
	return nil
}
