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
	skillColumns     = "id, name, icon, created_at"
	selectSkillsIn   = "SELECT " + skillColumns + " FROM skills WHERE id IN (?) ORDER BY name"
	selectAllSkills  = "SELECT " + skillColumns + " FROM skills ORDER BY created_at DESC"
	selectSkillByID  = "SELECT " + skillColumns + " FROM skills WHERE id = ?"
	sosmedColumns    = "id, name, url, created_at"
	selectSosmedIn   = "SELECT " + sosmedColumns + " FROM sosmed WHERE id IN (?) ORDER BY name"
	selectAllSosmed  = "SELECT " + sosmedColumns + " FROM sosmed ORDER BY created_at DESC"
	selectSosmedByID = "SELECT " + sosmedColumns + " FROM sosmed WHERE id = ?"
)

type SkillRepository struct {
	db *sqlx.DB
}

// compile-time check: *SkillRepository must satisfy port.SkillRepository
var _ port.SkillRepository = (*SkillRepository)(nil)

func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{db: sqlx.NewDb(db, "mysql")}
}

func (r *SkillRepository) Create(ctx context.Context, s *model.Skill) error {
	logger.Infof(ctx, "creating database record for skill #%s...", s.ID)

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO skills (id, name, icon, created_at) VALUES (?, ?, ?, ?)",
		s.ID, s.Name, s.Icon, s.CreatedAt,
	)
	return mapErr(err)
}

func (r *SkillRepository) Update(ctx context.Context, s *model.Skill) error {
	logger.Infof(ctx, "updating database record for skill #%s...", s.ID)

	_, err := r.db.ExecContext(ctx, "UPDATE skills SET name = ?, icon = ? WHERE id = ?", s.Name, s.Icon, s.ID)
	return mapErr(err)
}

func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	var s model.Skill
	if err := r.db.GetContext(ctx, &s, selectSkillByID, id); err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

func (r *SkillRepository) List(ctx context.Context) ([]model.Skill, error) {
	out := []model.Skill{}
	if err := r.db.SelectContext(ctx, &out, selectAllSkills); err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

// Delete removes the skill; its links go with it through ON DELETE CASCADE.
func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Infof(ctx, "deleting database record for skill #%s...", id)

	res, err := r.db.ExecContext(ctx, "DELETE FROM skills WHERE id = ?", id)
	if err != nil {
		return mapErr(err)
	}
	return rowsAffected(res)
}

type SosmedRepository struct {
	db *sqlx.DB
}

// compile-time check: *SosmedRepository must satisfy port.SosmedRepository
var _ port.SosmedRepository = (*SosmedRepository)(nil)

func NewSosmedRepository(db *sql.DB) *SosmedRepository {
	return &SosmedRepository{db: sqlx.NewDb(db, "mysql")}
}

func (r *SosmedRepository) Create(ctx context.Context, s *model.Sosmed) error {
	logger.Infof(ctx, "creating database record for sosmed #%s...", s.ID)

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sosmed (id, name, url, created_at) VALUES (?, ?, ?, ?)",
		s.ID, s.Name, s.URL, s.CreatedAt,
	)
	return mapErr(err)
}

func (r *SosmedRepository) Update(ctx context.Context, s *model.Sosmed) error {
	logger.Infof(ctx, "updating database record for sosmed #%s...", s.ID)

	_, err := r.db.ExecContext(ctx, "UPDATE sosmed SET name = ?, url = ? WHERE id = ?", s.Name, s.URL, s.ID)
	return mapErr(err)
}

func (r *SosmedRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Sosmed, error) {
	var s model.Sosmed
	if err := r.db.GetContext(ctx, &s, selectSosmedByID, id); err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

func (r *SosmedRepository) List(ctx context.Context) ([]model.Sosmed, error) {
	out := []model.Sosmed{}
	if err := r.db.SelectContext(ctx, &out, selectAllSosmed); err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

func (r *SosmedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Infof(ctx, "deleting database record for sosmed #%s...", id)

	res, err := r.db.ExecContext(ctx, "DELETE FROM sosmed WHERE id = ?", id)
	if err != nil {
		return mapErr(err)
	}
	return rowsAffected(res)
}
