package project

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/internal/mock"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/reconcile"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

func upload(name string) *port.Upload {
	return &port.Upload{Filename: name, ContentType: "image/png", Size: 3, Reader: strings.NewReader("png")}
}

func input(skills []string) port.ProjectInput {
	return port.ProjectInput{
		Title:     "Portfolio CMS",
		Slug:      "portfolio-cms",
		Features:  []string{"admin", "landing"},
		Libraries: []string{"chi"},
		SkillIDs:  skills,
	}
}

func existing(id uuid.UUID) *model.Project {
	return &model.Project{
		ID:        id,
		Title:     "Old",
		Slug:      "old",
		Thumbnail: "/thumb/a.png",
		Gallery:   model.StringList{"/g/1.png", "/g/2.png"},
	}
}

type fixture struct {
	repo  *mock.MockProjectRepository
	files *mock.FileStore
	tasks *mock.MockDispatcher
	cache *mock.Cache
	rec   *reconcile.Reconciler
}

func newFixture() *fixture {
	f := &fixture{
		repo:  &mock.MockProjectRepository{},
		files: &mock.FileStore{},
		tasks: &mock.MockDispatcher{},
		cache: &mock.Cache{},
	}
	f.rec = NewReconciler(f.files, f.tasks)
	return f
}

func TestCreateProject_Success(t *testing.T) {
	f := newFixture()
	skill := uuid.NewUUID()
	svc := NewProjectCreator(f.repo, f.rec, f.cache)

	p, err := svc.CreateProject(context.Background(), port.CreateProjectInput{
		ProjectInput: input([]string{skill.String()}),
		Thumbnail:    upload("cover.png"),
		Gallery:      []port.Upload{*upload("one.png"), *upload("two.png")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Thumbnail != "/thumbnails/1-cover.png" {
		t.Errorf("thumbnail = %q", p.Thumbnail)
	}
	wantGallery := model.StringList{"/gallery/2-one.png", "/gallery/3-two.png"}
	if !reflect.DeepEqual(p.Gallery, wantGallery) {
		t.Errorf("gallery = %v; want %v", p.Gallery, wantGallery)
	}
	if ids := f.repo.Rel[model.RelationSkills]; len(ids) != 1 || ids[0] != skill {
		t.Errorf("skills = %v", ids)
	}
	if len(f.files.Deleted) != 0 {
		t.Errorf("nothing should be deleted, got %v", f.files.Deleted)
	}
	if !f.cache.DelPortfolioCalled {
		t.Error("expected cache invalidation")
	}
}

func TestCreateProject_RequiresMedia(t *testing.T) {
	tests := []struct {
		name    string
		in      port.CreateProjectInput
		wantMsg string
	}{
		{
			name:    "no thumbnail",
			in:      port.CreateProjectInput{ProjectInput: input(nil), Gallery: []port.Upload{*upload("g.png")}},
			wantMsg: reconcile.MsgThumbnailRequired,
		},
		{
			name:    "no gallery",
			in:      port.CreateProjectInput{ProjectInput: input(nil), Thumbnail: upload("t.png")},
			wantMsg: reconcile.MsgGalleryRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := NewProjectCreator(f.repo, f.rec, f.cache).CreateProject(context.Background(), tt.in)

			var vErr *reconcile.ValidationError
			if !errors.As(err, &vErr) || vErr.Msg != tt.wantMsg {
				t.Fatalf("expected %q, got %v", tt.wantMsg, err)
			}
			if f.files.Mutations() != 0 || f.repo.Created != nil {
				t.Error("expected zero mutations")
			}
		})
	}
}

func TestCreateProject_InsertFailureDiscardsFiles(t *testing.T) {
	f := newFixture()
	f.repo.CreateErr = port.ErrDuplicate
	svc := NewProjectCreator(f.repo, f.rec, f.cache)

	_, err := svc.CreateProject(context.Background(), port.CreateProjectInput{
		ProjectInput: input(nil),
		Thumbnail:    upload("t.png"),
		Gallery:      []port.Upload{*upload("g.png")},
	})
	var pErr *reconcile.PersistenceError
	if !errors.As(err, &pErr) || !errors.Is(err, port.ErrDuplicate) {
		t.Fatalf("expected PersistenceError wrapping ErrDuplicate, got %v", err)
	}
	if !reflect.DeepEqual(f.files.Deleted, f.files.Stored) {
		t.Errorf("stored %v but deleted %v", f.files.Stored, f.files.Deleted)
	}
	if f.cache.DelPortfolioCalled {
		t.Error("cache must not be invalidated")
	}
}

func TestCreateProject_MalformedSkillsBeforeAnyStore(t *testing.T) {
	f := newFixture()
	_, err := NewProjectCreator(f.repo, f.rec, f.cache).CreateProject(context.Background(), port.CreateProjectInput{
		ProjectInput: input([]string{"nope"}),
		Thumbnail:    upload("t.png"),
		Gallery:      []port.Upload{*upload("g.png")},
	})
	var vErr *reconcile.ValidationError
	if !errors.As(err, &vErr) || vErr.Msg != reconcile.MsgMalformedIDs {
		t.Fatalf("expected malformed identifier list, got %v", err)
	}
	if f.files.Mutations() != 0 {
		t.Error("expected zero mutations")
	}
}

func TestUpdateProject_Scenario(t *testing.T) {
	f := newFixture()
	id := uuid.NewUUID()
	f.repo.GetOut = existing(id)
	svc := NewProjectUpdater(f.repo, f.rec, f.cache)

	p, err := svc.UpdateProject(context.Background(), port.UpdateProjectInput{
		ID:           id,
		ProjectInput: input(nil),
		Media: port.ChangeSet{
			KeptGallery:    []string{"/g/1.png"},
			DeletedGallery: []string{"/g/2.png"},
			NewGallery:     []port.Upload{*upload("x.png")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Thumbnail != "/thumb/a.png" {
		t.Errorf("thumbnail = %q; want unchanged", p.Thumbnail)
	}
	wantGallery := model.StringList{"/g/1.png", "/gallery/1-x.png"}
	if !reflect.DeepEqual(p.Gallery, wantGallery) {
		t.Errorf("gallery = %v; want %v", p.Gallery, wantGallery)
	}
	if !reflect.DeepEqual(f.files.Deleted, []string{"/g/2.png"}) {
		t.Errorf("deleted = %v", f.files.Deleted)
	}
	if p.Title != "Portfolio CMS" {
		t.Errorf("fields not applied: %+v", p)
	}
	if _, ok := f.repo.Rel[model.RelationSkills]; ok {
		t.Error("unsubmitted skills must not be replaced")
	}
	if !f.cache.DelPortfolioCalled {
		t.Error("expected cache invalidation")
	}
}

func TestUpdateProject_RemovingLastImageFails(t *testing.T) {
	f := newFixture()
	id := uuid.NewUUID()
	prev := existing(id)
	prev.Gallery = model.StringList{"/g/1.png"}
	f.repo.GetOut = prev
	svc := NewProjectUpdater(f.repo, f.rec, f.cache)

	_, err := svc.UpdateProject(context.Background(), port.UpdateProjectInput{
		ID:           id,
		ProjectInput: input(nil),
		Media:        port.ChangeSet{KeptGallery: []string{}},
	})
	var vErr *reconcile.ValidationError
	if !errors.As(err, &vErr) || vErr.Msg != reconcile.MsgGalleryRequired {
		t.Fatalf("expected gallery required, got %v", err)
	}
	if f.files.Mutations() != 0 || f.repo.Updated != nil {
		t.Error("previous gallery must stay untouched")
	}
}

func TestUpdateProject_ThumbnailDeletedWithoutReplacement(t *testing.T) {
	f := newFixture()
	id := uuid.NewUUID()
	f.repo.GetOut = existing(id)

	_, err := NewProjectUpdater(f.repo, f.rec, f.cache).UpdateProject(context.Background(), port.UpdateProjectInput{
		ID:           id,
		ProjectInput: input(nil),
		Media:        port.ChangeSet{ThumbnailDeleted: true},
	})
	var vErr *reconcile.ValidationError
	if !errors.As(err, &vErr) || vErr.Msg != reconcile.MsgThumbnailRequired {
		t.Fatalf("expected thumbnail required, got %v", err)
	}
	if f.files.Mutations() != 0 {
		t.Error("expected zero mutations")
	}
}

func TestUpdateProject_UploadWinsOverDelete(t *testing.T) {
	f := newFixture()
	id := uuid.NewUUID()
	f.repo.GetOut = existing(id)

	p, err := NewProjectUpdater(f.repo, f.rec, f.cache).UpdateProject(context.Background(), port.UpdateProjectInput{
		ID:           id,
		ProjectInput: input(nil),
		Media:        port.ChangeSet{NewThumbnail: upload("new.png"), ThumbnailDeleted: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Thumbnail != "/thumbnails/1-new.png" {
		t.Errorf("thumbnail = %q", p.Thumbnail)
	}
	if !reflect.DeepEqual(f.files.Deleted, []string{"/thumb/a.png"}) {
		t.Errorf("deleted = %v; want previous thumbnail exactly once", f.files.Deleted)
	}
}

func TestUpdateProject_UnknownKeptPath(t *testing.T) {
	f := newFixture()
	id := uuid.NewUUID()
	f.repo.GetOut = existing(id)

	_, err := NewProjectUpdater(f.repo, f.rec, f.cache).UpdateProject(context.Background(), port.UpdateProjectInput{
		ID:           id,
		ProjectInput: input(nil),
		Media:        port.ChangeSet{KeptGallery: []string{"/g/1.png", "/elsewhere/secret.png"}},
	})
	var vErr *reconcile.ValidationError
	if !errors.As(err, &vErr) || vErr.Msg != reconcile.MsgUnknownGalleryPath {
		t.Fatalf("expected unknown gallery path error, got %v", err)
	}
	if f.files.Mutations() != 0 {
		t.Error("expected zero mutations")
	}
}

func TestUpdateProject_CommitFailureKeepsOldFiles(t *testing.T) {
	f := newFixture()
	id := uuid.NewUUID()
	f.repo.GetOut = existing(id)
	f.repo.UpdateErr = port.ErrUnknownReference

	_, err := NewProjectUpdater(f.repo, f.rec, f.cache).UpdateProject(context.Background(), port.UpdateProjectInput{
		ID:           id,
		ProjectInput: input([]string{uuid.NewUUID().String()}),
		Media: port.ChangeSet{
			NewThumbnail: upload("t.png"),
			KeptGallery:  []string{"/g/2.png"},
		},
	})
	if !errors.Is(err, port.ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
	// only the freshly stored thumbnail is removed again
	if !reflect.DeepEqual(f.files.Deleted, []string{"/thumbnails/1-t.png"}) {
		t.Errorf("deleted = %v", f.files.Deleted)
	}
	if f.cache.DelPortfolioCalled {
		t.Error("cache must not be invalidated")
	}
}

func TestUpdateProject_FailedDeleteIsDeferred(t *testing.T) {
	f := newFixture()
	id := uuid.NewUUID()
	f.repo.GetOut = existing(id)
	f.files.DeleteErrs = map[string]error{"/g/2.png": errors.New("disk busy")}

	p, err := NewProjectUpdater(f.repo, f.rec, f.cache).UpdateProject(context.Background(), port.UpdateProjectInput{
		ID:           id,
		ProjectInput: input(nil),
		Media:        port.ChangeSet{DeletedGallery: []string{"/g/2.png"}},
	})
	if err != nil {
		t.Fatalf("delete failures must not fail the update: %v", err)
	}
	if !reflect.DeepEqual(p.Gallery, model.StringList{"/g/1.png"}) {
		t.Errorf("gallery = %v", p.Gallery)
	}
	if !reflect.DeepEqual(f.tasks.PurgePaths, []string{"/g/2.png"}) {
		t.Errorf("purge tasks = %v", f.tasks.PurgePaths)
	}
}

func TestUpdateProject_EmptySkillsClears(t *testing.T) {
	f := newFixture()
	id := uuid.NewUUID()
	f.repo.GetOut = existing(id)

	if _, err := NewProjectUpdater(f.repo, f.rec, f.cache).UpdateProject(context.Background(), port.UpdateProjectInput{
		ID:           id,
		ProjectInput: input([]string{}),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids, ok := f.repo.Rel[model.RelationSkills]
	if !ok || len(ids) != 0 {
		t.Errorf("expected empty skills relation, got %v (present=%v)", ids, ok)
	}
}

func TestUpdateProject_NotFound(t *testing.T) {
	f := newFixture()
	f.repo.GetErr = port.ErrNotFound

	_, err := NewProjectUpdater(f.repo, f.rec, f.cache).UpdateProject(context.Background(), port.UpdateProjectInput{ID: uuid.NewUUID()})
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProject_RemovesRowThenFiles(t *testing.T) {
	f := newFixture()
	id := uuid.NewUUID()
	f.repo.GetOut = existing(id)

	if err := NewProjectDeleter(f.repo, f.rec, f.cache).DeleteProject(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.repo.DeletedID != id {
		t.Errorf("DeletedID = %v", f.repo.DeletedID)
	}
	want := []string{"/thumb/a.png", "/g/1.png", "/g/2.png"}
	if !reflect.DeepEqual(f.files.Deleted, want) {
		t.Errorf("deleted = %v; want %v", f.files.Deleted, want)
	}
	if !f.cache.DelPortfolioCalled {
		t.Error("expected cache invalidation")
	}
}

func TestDeleteProject_RowDeleteFailureKeepsFiles(t *testing.T) {
	f := newFixture()
	id := uuid.NewUUID()
	f.repo.GetOut = existing(id)
	f.repo.DeleteErr = errors.New("db down")

	if err := NewProjectDeleter(f.repo, f.rec, f.cache).DeleteProject(context.Background(), id); err == nil {
		t.Fatal("expected error")
	}
	if len(f.files.Deleted) != 0 {
		t.Errorf("no file may be removed, got %v", f.files.Deleted)
	}
}

func TestProjectGetter(t *testing.T) {
	id := uuid.NewUUID()
	repo := &mock.MockProjectRepository{GetOut: existing(id)}
	svc := NewProjectGetter(repo)

	p, err := svc.GetProject(context.Background(), id)
	if err != nil || p.ID != id {
		t.Fatalf("GetProject = %+v, %v", p, err)
	}
	if _, err := svc.GetProjectBySlug(context.Background(), "old"); err != nil || repo.GetSlug != "old" {
		t.Errorf("GetProjectBySlug: err=%v slug=%q", err, repo.GetSlug)
	}
	list, err := svc.ListProjects(context.Background())
	if err != nil || list == nil {
		t.Errorf("ListProjects = %v, %v", list, err)
	}
}
