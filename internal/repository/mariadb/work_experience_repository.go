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
	workExperienceColumns = "id, position, employment_type, company, location, location_type, description, start_date, end_date, created_at, updated_at"
	selectWorkExpByID     = "SELECT " + workExperienceColumns + " FROM work_experiences WHERE id = ?"
	selectAllWorkExp      = "SELECT " + workExperienceColumns + " FROM work_experiences ORDER BY start_date DESC"
	selectWorkExpIn       = "SELECT " + workExperienceColumns + " FROM work_experiences WHERE id IN (?) ORDER BY start_date DESC"
)

var workExperienceRelations = map[model.Relation]linkTable{
	model.RelationSkills: workExperienceSkills,
}

type WorkExperienceRepository struct {
	db *sqlx.DB
}

// compile-time check: *WorkExperienceRepository must satisfy port.WorkExperienceRepository
var _ port.WorkExperienceRepository = (*WorkExperienceRepository)(nil)

func NewWorkExperienceRepository(db *sql.DB) *WorkExperienceRepository {
	return &WorkExperienceRepository{db: sqlx.NewDb(db, "mysql")}
}

func (r *WorkExperienceRepository) Create(ctx context.Context, we *model.WorkExperience, rel model.RelationSet) error {
	logger.Infof(ctx, "creating database record for work experience #%s...", we.ID)

	return mapErr(withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
      INSERT INTO work_experiences
        (id, position, employment_type, company, location, location_type, description, start_date, end_date, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `,
			we.ID, we.Position, we.EmploymentType, we.Company, we.Location, we.LocationType,
			we.Description, we.StartDate, we.EndDate, we.CreatedAt, we.UpdatedAt,
		)
		if err != nil {
			return mapErr(err)
		}
		return replaceRelations(ctx, tx, workExperienceRelations, we.ID, rel)
	}))
}

func (r *WorkExperienceRepository) Update(ctx context.Context, we *model.WorkExperience, rel model.RelationSet) error {
	logger.Infof(ctx, "updating database record for work experience #%s...", we.ID)

	return mapErr(withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
      UPDATE work_experiences
      SET
        position        = ?,
        employment_type = ?,
        company         = ?,
        location        = ?,
        location_type   = ?,
        description     = ?,
        start_date      = ?,
        end_date        = ?,
        updated_at      = ?
      WHERE id = ?
    `,
			we.Position, we.EmploymentType, we.Company, we.Location, we.LocationType,
			we.Description, we.StartDate, we.EndDate, we.UpdatedAt,
			we.ID, // WHERE clause
		)
		if err != nil {
			return mapErr(err)
		}
		return replaceRelations(ctx, tx, workExperienceRelations, we.ID, rel)
	}))
}

func (r *WorkExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.WorkExperience, error) {
	var we model.WorkExperience
	if err := r.db.GetContext(ctx, &we, selectWorkExpByID, id); err != nil {
		return nil, mapErr(err)
	}
	list := []model.WorkExperience{we}
	if err := attachWorkExperienceSkills(ctx, r.db, list); err != nil {
		return nil, mapErr(err)
	}
	return &list[0], nil
}

func (r *WorkExperienceRepository) List(ctx context.Context) ([]model.WorkExperience, error) {
	out := []model.WorkExperience{}
	if err := r.db.SelectContext(ctx, &out, selectAllWorkExp); err != nil {
		return nil, mapErr(err)
	}
	if err := attachWorkExperienceSkills(ctx, r.db, out); err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

func (r *WorkExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Infof(ctx, "deleting database record for work experience #%s...", id)

	res, err := r.db.ExecContext(ctx, "DELETE FROM work_experiences WHERE id = ?", id)
	if err != nil {
		return mapErr(err)
	}
	return rowsAffected(res)
}

func attachWorkExperienceSkills(ctx context.Context, q sqlx.QueryerContext, list []model.WorkExperience) error {
	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	links, targets, err := loadLinks(ctx, q, workExperienceSkills, ids)
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
