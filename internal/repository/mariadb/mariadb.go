package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
)

const (
	errDuplicateEntry    = 1062
	errNoReferencedRow   = 1452
	errNoReferencedRowV2 = 1216
)

// mapErr translates driver errors into the port persistence sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return port.ErrNotFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errDuplicateEntry:
			return fmt.Errorf("%w: %s", port.ErrDuplicate, myErr.Message)
		case errNoReferencedRow, errNoReferencedRowV2:
			return fmt.Errorf("%w: %s", port.ErrUnknownReference, myErr.Message)
		}
	}
	return err
}

// withTx runs fn in a transaction, committing when it returns nil.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Errorf(ctx, "❌  rollback failed: %v", rbErr)
			}
			return
		}
		err = tx.Commit()
	}()
	return fn(tx)
}

func rowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return port.ErrNotFound
	}
	return nil
}

// linkTable is a join table between an owner and a target entity.
type linkTable struct {
	table     string
	ownerCol  string
	targetCol string
}

var (
	projectSkills        = linkTable{"project_skills", "project_id", "skill_id"}
	workExperienceSkills = linkTable{"work_experience_skills", "work_experience_id", "skill_id"}
	aboutSkills          = linkTable{"about_skills", "about_id", "skill_id"}
	aboutSosmed          = linkTable{"about_sosmed", "about_id", "sosmed_id"}
	aboutProjects        = linkTable{"about_projects", "about_id", "project_id"}
	aboutWorkExperiences = linkTable{"about_work_experiences", "about_id", "work_experience_id"}
)

// replaceRelation overwrites every link of owner in lt with ids.
func replaceRelation(ctx context.Context, tx *sqlx.Tx, lt linkTable, ownerID uuid.UUID, ids []uuid.UUID) error {
	logger.Debugf(ctx, "replacing %s links of #%s with %d id(s)...", lt.table, ownerID, len(ids))

	del := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", lt.table, lt.ownerCol)
	if _, err := tx.ExecContext(ctx, del, ownerID); err != nil {
		return mapErr(err)
	}
	if len(ids) == 0 {
		return nil
	}

	ib := sqlbuilder.MySQL.NewInsertBuilder()
	ib.InsertInto(lt.table).Cols(lt.ownerCol, lt.targetCol)
	for _, id := range ids {
		ib.Values(ownerID, id)
	}
	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return mapErr(err)
	}
	return nil
}

// replaceRelations applies every relation of rel that owner supports, in a
// stable order. An unsupported relation is rejected before any write.
func replaceRelations(ctx context.Context, tx *sqlx.Tx, supported map[model.Relation]linkTable, ownerID uuid.UUID, rel model.RelationSet) error {
	names := make([]string, 0, len(rel))
	for name := range rel {
		if _, ok := supported[name]; !ok {
			return fmt.Errorf("relation %q is not supported here", name)
		}
		names = append(names, string(name))
	}
	sort.Strings(names)

	for _, name := range names {
		r := model.Relation(name)
		if err := replaceRelation(ctx, tx, supported[r], ownerID, rel[r]); err != nil {
			return err
		}
	}
	return nil
}

type linkRow struct {
	OwnerID  uuid.UUID `db:"owner_id"`
	TargetID uuid.UUID `db:"target_id"`
}

// loadLinks returns the targets linked to each owner and the distinct targets.
func loadLinks(ctx context.Context, q sqlx.QueryerContext, lt linkTable, owners []uuid.UUID) (map[uuid.UUID][]uuid.UUID, []uuid.UUID, error) {
	if len(owners) == 0 {
		return nil, nil, nil
	}
	query, args, err := sqlx.In(fmt.Sprintf(
		"SELECT %s AS owner_id, %s AS target_id FROM %s WHERE %s IN (?)",
		lt.ownerCol, lt.targetCol, lt.table, lt.ownerCol,
	), owners)
	if err != nil {
		return nil, nil, err
	}

	var rows []linkRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, nil, err
	}

	links := make(map[uuid.UUID][]uuid.UUID, len(owners))
	seen := make(map[uuid.UUID]struct{}, len(rows))
	var targets []uuid.UUID
	for _, row := range rows {
		links[row.OwnerID] = append(links[row.OwnerID], row.TargetID)
		if _, ok := seen[row.TargetID]; !ok {
			seen[row.TargetID] = struct{}{}
			targets = append(targets, row.TargetID)
		}
	}
	return links, targets, nil
}

// selectIn runs query with its single IN (?) placeholder bound to ids.
func selectIn[T any](ctx context.Context, q sqlx.QueryerContext, query string, ids []uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	qs, args, err := sqlx.In(query, ids)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := sqlx.SelectContext(ctx, q, &out, qs, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// attach keeps the items of all whose identifier is in ids, in the order of all.
func attach[T any](ids []uuid.UUID, all []T, idOf func(T) uuid.UUID) []T {
	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]T, 0, len(ids))
	for _, item := range all {
		if _, ok := want[idOf(item)]; ok {
			out = append(out, item)
		}
	}
	return out
}

func skillID(s model.Skill) uuid.UUID                   { return s.ID }
func sosmedID(s model.Sosmed) uuid.UUID                 { return s.ID }
func projectID(p model.Project) uuid.UUID               { return p.ID }
func workExperienceID(w model.WorkExperience) uuid.UUID { return w.ID }
