package integration

import (
	"context"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/internal/migration"
	"github.com/fhuszti/portfolio-ms-go/test/testutil"
)

var tables = []string{
	"skills", "sosmed", "work_experiences", "projects", "abouts",
	"project_skills", "work_experience_skills", "about_skills",
	"about_sosmed", "about_projects", "about_work_experiences",
}

func TestMigrateUpAndDownIntegration(t *testing.T) {
	testDB, err := testutil.SetupTestDB(false)
	if err != nil {
		t.Fatalf("setup DB: %v", err)
	}
	defer func() { _ = testDB.Cleanup() }()

	ctx := context.Background()
	db := testDB.DB

	if err := migration.MigrateUp(ctx, db); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}
	// applying twice is a no-op
	if err := migration.MigrateUp(ctx, db); err != nil {
		t.Fatalf("second MigrateUp failed: %v", err)
	}

	for _, table := range tables {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Fatalf("query %s: %v", table, err)
		}
		if n != 0 {
			t.Errorf("expected empty %s, got %d rows", table, n)
		}
	}

	if err := migration.MigrateDown(ctx, db, len(tables)); err != nil {
		t.Fatalf("MigrateDown failed: %v", err)
	}
	var n int
	err = db.QueryRow("SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = 'projects'").Scan(&n)
	if err != nil {
		t.Fatalf("information_schema: %v", err)
	}
	if n != 0 {
		t.Error("projects table still exists after rolling everything back")
	}
}
