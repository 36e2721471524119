package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
	"github.com/go-sql-driver/mysql"
)

func TestSkillRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{"success", nil, nil},
		{"duplicate name", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Go'"}, port.ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("unexpected error when opening stub database: %s", err)
			}
			defer func() { _ = sqlDB.Close() }()

			s := &model.Skill{ID: uuid.NewUUID(), Name: "Go", Icon: "go.svg", CreatedAt: time.Now().UTC()}
			exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO skills (id, name, icon, created_at) VALUES (?, ?, ?, ?)")).
				WithArgs(s.ID, s.Name, s.Icon, s.CreatedAt)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err = NewSkillRepository(sqlDB).Create(context.Background(), s)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Create() returned unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v; want %v", err, tt.wantErr)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func TestSkillRepository_GetByID_NotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	id := uuid.NewUUID()
	mock.ExpectQuery(regexp.QuoteMeta(selectSkillByID)).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon", "created_at"}))

	if _, err := NewSkillRepository(sqlDB).GetByID(context.Background(), id); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
}

func TestSkillRepository_List(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	now := time.Now().UTC()
	a, b := uuid.NewUUID(), uuid.NewUUID()
	mock.ExpectQuery(regexp.QuoteMeta(selectAllSkills)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon", "created_at"}).
			AddRow(raw(a), "Go", "go.svg", now).
			AddRow(raw(b), "SQL", "", now))

	got, err := NewSkillRepository(sqlDB).List(context.Background())
	if err != nil {
		t.Fatalf("List() returned unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != a || got[1].Name != "SQL" {
		t.Errorf("List() = %+v", got)
	}
}

func TestSkillRepository_List_EmptyIsNotNil(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(selectAllSkills)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon", "created_at"}))

	got, err := NewSkillRepository(sqlDB).List(context.Background())
	if err != nil || got == nil {
		t.Fatalf("List() = %#v, %v", got, err)
	}
}

func TestSosmedRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"deleted", 1, nil},
		{"missing", 0, port.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("unexpected error when opening stub database: %s", err)
			}
			defer func() { _ = sqlDB.Close() }()

			id := uuid.NewUUID()
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sosmed WHERE id = ?")).WithArgs(id).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err = NewSosmedRepository(sqlDB).Delete(context.Background(), id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Delete() error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSosmedRepository_Update(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	s := &model.Sosmed{ID: uuid.NewUUID(), Name: "GitHub", URL: "https://github.com/x"}
	mock.ExpectExec(regexp.QuoteMeta("UPDATE sosmed SET name = ?, url = ? WHERE id = ?")).
		WithArgs(s.Name, s.URL, s.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := NewSosmedRepository(sqlDB).Update(context.Background(), s); err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
