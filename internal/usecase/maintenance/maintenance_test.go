package maintenance

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/mock"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

func TestPurgeFile_DeletesUnreferenced(t *testing.T) {
	projects := &mock.MockProjectRepository{PathsOut: []string{"/gallery/keep.webp"}}
	abouts := &mock.MockAboutRepository{PathsOut: []string{"/profile/me.webp"}}
	files := &mock.FileStore{}
	svc := NewFilePurger(projects, abouts, files)

	if err := svc.PurgeFile(context.Background(), "/gallery/old.webp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(files.Deleted, []string{"/gallery/old.webp"}) {
		t.Errorf("deleted = %v", files.Deleted)
	}
}

func TestPurgeFile_SkipsReferencedPath(t *testing.T) {
	projects := &mock.MockProjectRepository{PathsOut: []string{"/gallery/keep.webp"}}
	files := &mock.FileStore{}
	svc := NewFilePurger(projects, &mock.MockAboutRepository{}, files)

	if err := svc.PurgeFile(context.Background(), "gallery/keep.webp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files.Deleted) != 0 {
		t.Errorf("referenced file must survive, deleted %v", files.Deleted)
	}
}

func TestPurgeFile_Errors(t *testing.T) {
	boom := errors.New("boom")

	svc := NewFilePurger(&mock.MockProjectRepository{PathsErr: boom}, &mock.MockAboutRepository{}, &mock.FileStore{})
	if err := svc.PurgeFile(context.Background(), "/gallery/x.webp"); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}

	files := &mock.FileStore{DeleteErrs: map[string]error{"/gallery/x.webp": boom}}
	svc = NewFilePurger(&mock.MockProjectRepository{}, &mock.MockAboutRepository{}, files)
	if err := svc.PurgeFile(context.Background(), "/gallery/x.webp"); !errors.Is(err, boom) {
		t.Errorf("expected %v so the task retries, got %v", boom, err)
	}

	if err := svc.PurgeFile(context.Background(), ""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestSweepOrphans(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-2 * time.Hour)
	fresh := now.Add(-5 * time.Minute)

	projects := &mock.MockProjectRepository{PathsOut: []string{"/thumbnails/t.webp", "/gallery/g1.webp"}}
	abouts := &mock.MockAboutRepository{PathsOut: []string{"/profile/me.webp"}}
	strg := &mock.Storage{ListOut: []port.FileInfo{
		{Key: "thumbnails/t.webp", LastModified: old},
		{Key: "thumbnails/orphan.webp", LastModified: old},
		{Key: "gallery/g1.webp", LastModified: old},
		{Key: "gallery/orphan.webp", LastModified: old},
		{Key: "gallery/uploading.webp", LastModified: fresh},
		{Key: "profile/me.webp", LastModified: old},
		{Key: "profile/stale.webp", LastModified: old},
	}}
	tasks := &mock.MockDispatcher{}

	svc := NewOrphanSweeper(projects, abouts, strg, tasks, DefaultOrphanMinAge).(*sweepOrphansSrv)
	svc.now = func() time.Time { return now }

	n, err := svc.SweepOrphans(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"/gallery/orphan.webp", "/profile/stale.webp", "/thumbnails/orphan.webp"}
	got := append([]string(nil), tasks.PurgePaths...)
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("purged = %v; want %v", got, want)
	}
	if n != len(want) {
		t.Errorf("count = %d; want %d", n, len(want))
	}
}

func TestSweepOrphans_Errors(t *testing.T) {
	boom := errors.New("boom")

	svc := NewOrphanSweeper(&mock.MockProjectRepository{}, &mock.MockAboutRepository{PathsErr: boom}, &mock.Storage{}, &mock.MockDispatcher{}, time.Hour)
	if _, err := svc.SweepOrphans(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}

	svc = NewOrphanSweeper(&mock.MockProjectRepository{}, &mock.MockAboutRepository{}, &mock.Storage{ListErr: boom}, &mock.MockDispatcher{}, time.Hour)
	if _, err := svc.SweepOrphans(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}

	strg := &mock.Storage{ListOut: []port.FileInfo{{Key: "gallery/x.webp"}}}
	tasks := &mock.MockDispatcher{PurgeErr: boom}
	svc = NewOrphanSweeper(&mock.MockProjectRepository{}, &mock.MockAboutRepository{}, strg, tasks, time.Hour)
	n, err := svc.SweepOrphans(context.Background())
	if err != nil || n != 0 {
		t.Errorf("enqueue failures are logged and skipped, got n=%d err=%v", n, err)
	}
}
