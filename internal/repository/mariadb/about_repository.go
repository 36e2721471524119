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
	aboutColumns    = "id, name, job_title, introduction, profile_picture, created_at, updated_at"
	selectAboutByID = "SELECT " + aboutColumns + " FROM abouts WHERE id = ?"
	selectAllAbouts = "SELECT " + aboutColumns + " FROM abouts ORDER BY created_at DESC"
)

var aboutRelations = map[model.Relation]linkTable{
	model.RelationSkills:          aboutSkills,
	model.RelationSosmed:          aboutSosmed,
	model.RelationProjects:        aboutProjects,
	model.RelationWorkExperiences: aboutWorkExperiences,
}

type AboutRepository struct {
	db *sqlx.DB
}

// compile-time check: *AboutRepository must satisfy port.AboutRepository
var _ port.AboutRepository = (*AboutRepository)(nil)

func NewAboutRepository(db *sql.DB) *AboutRepository {
	return &AboutRepository{db: sqlx.NewDb(db, "mysql")}
}

func (r *AboutRepository) Create(ctx context.Context, a *model.About, rel model.RelationSet) error {
	logger.Infof(ctx, "creating database record for about #%s...", a.ID)

	return mapErr(withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
      INSERT INTO abouts
        (id, name, job_title, introduction, profile_picture, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `,
			a.ID, a.Name, a.JobTitle, a.Introduction, a.ProfilePicture, a.CreatedAt, a.UpdatedAt,
		)
		if err != nil {
			return mapErr(err)
		}
		return replaceRelations(ctx, tx, aboutRelations, a.ID, rel)
	}))
}

func (r *AboutRepository) Update(ctx context.Context, a *model.About, rel model.RelationSet) error {
	logger.Infof(ctx, "updating database record for about #%s...", a.ID)

	return mapErr(withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
      UPDATE abouts
      SET
        name            = ?,
        job_title       = ?,
        introduction    = ?,
        profile_picture = ?,
        updated_at      = ?
      WHERE id = ?
    `,
			a.Name, a.JobTitle, a.Introduction, a.ProfilePicture, a.UpdatedAt,
			a.ID, // WHERE clause
		)
		if err != nil {
			return mapErr(err)
		}
		return replaceRelations(ctx, tx, aboutRelations, a.ID, rel)
	}))
}

func (r *AboutRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.About, error) {
	var a model.About
	if err := r.db.GetContext(ctx, &a, selectAboutByID, id); err != nil {
		return nil, mapErr(err)
	}
	list := []model.About{a}
	if err := r.hydrate(ctx, list); err != nil {
		return nil, mapErr(err)
	}
	return &list[0], nil
}

func (r *AboutRepository) List(ctx context.Context) ([]model.About, error) {
	out := []model.About{}
	if err := r.db.SelectContext(ctx, &out, selectAllAbouts); err != nil {
		return nil, mapErr(err)
	}
	if err := r.hydrate(ctx, out); err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

func (r *AboutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Infof(ctx, "deleting database record for about #%s...", id)

	res, err := r.db.ExecContext(ctx, "DELETE FROM abouts WHERE id = ?", id)
	if err != nil {
		return mapErr(err)
	}
	return rowsAffected(res)
}

// ListMediaPaths returns every profile picture in use.
func (r *AboutRepository) ListMediaPaths(ctx context.Context) ([]string, error) {
	var paths []string
	if err := r.db.SelectContext(ctx, &paths, "SELECT profile_picture FROM abouts WHERE profile_picture <> ''"); err != nil {
		return nil, mapErr(err)
	}
	return paths, nil
}

// hydrate loads the four relations of every about, with the skills of the
// linked projects and work experiences.
func (r *AboutRepository) hydrate(ctx context.Context, list []model.About) error {
	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}

	skillLinks, skillTargets, err := loadLinks(ctx, r.db, aboutSkills, ids)
	if err != nil {
		return err
	}
	skills, err := selectIn[model.Skill](ctx, r.db, selectSkillsIn, skillTargets)
	if err != nil {
		return err
	}

	sosmedLinks, sosmedTargets, err := loadLinks(ctx, r.db, aboutSosmed, ids)
	if err != nil {
		return err
	}
	sosmed, err := selectIn[model.Sosmed](ctx, r.db, selectSosmedIn, sosmedTargets)
	if err != nil {
		return err
	}

	projectLinks, projectTargets, err := loadLinks(ctx, r.db, aboutProjects, ids)
	if err != nil {
		return err
	}
	projects, err := selectIn[model.Project](ctx, r.db, selectProjectsIn, projectTargets)
	if err != nil {
		return err
	}
	if err := attachProjectSkills(ctx, r.db, projects); err != nil {
		return err
	}

	weLinks, weTargets, err := loadLinks(ctx, r.db, aboutWorkExperiences, ids)
	if err != nil {
		return err
	}
	experiences, err := selectIn[model.WorkExperience](ctx, r.db, selectWorkExpIn, weTargets)
	if err != nil {
		return err
	}
	if err := attachWorkExperienceSkills(ctx, r.db, experiences); err != nil {
		return err
	}

	for i := range list {
		id := list[i].ID
		list[i].Skills = attach(skillLinks[id], skills, skillID)
		list[i].Sosmed = attach(sosmedLinks[id], sosmed, sosmedID)
		list[i].Projects = attach(projectLinks[id], projects, projectID)
		list[i].WorkExperiences = attach(weLinks[id], experiences, workExperienceID)
	}
	return nil
}
