package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/internal/mock"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/google/go-cmp/cmp"
)

var projectFolders = Folders{Thumbnail: FolderThumbnails, Gallery: FolderGallery}

func TestStage_Scenario(t *testing.T) {
	files := &mock.FileStore{}
	r := NewReconciler("project", files, &mock.MockDispatcher{}, projectFolders)
	prev := model.MediaSet{Thumbnail: "/thumb/a.png", Gallery: model.StringList{"/g/1.png", "/g/2.png"}}

	out, err := r.Stage(context.Background(), prev, port.ChangeSet{
		KeptGallery:    []string{"/g/1.png"},
		DeletedGallery: []string{"/g/2.png"},
		NewGallery:     []port.Upload{upload("x.png")},
	}, ProjectPolicy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantGallery := model.StringList{"/g/1.png", "/gallery/1-x.png"}
	if diff := cmp.Diff(wantGallery, out.Media.Gallery); diff != "" {
		t.Errorf("Gallery mismatch (-want +got):\n%s", diff)
	}
	if out.Media.Thumbnail != "/thumb/a.png" {
		t.Errorf("thumbnail = %q, want unchanged", out.Media.Thumbnail)
	}
	if diff := cmp.Diff([]string{"/g/2.png"}, out.Superseded); diff != "" {
		t.Errorf("Superseded mismatch (-want +got):\n%s", diff)
	}
	if len(files.Deleted) != 0 {
		t.Errorf("Stage must not delete, deleted %v", files.Deleted)
	}

	lingering := r.Finalise(context.Background(), out)
	if len(lingering) != 0 {
		t.Errorf("unexpected lingering paths %v", lingering)
	}
	if diff := cmp.Diff([]string{"/g/2.png"}, files.Deleted); diff != "" {
		t.Errorf("Deleted mismatch (-want +got):\n%s", diff)
	}
}

func TestStage_GalleryOrder(t *testing.T) {
	files := &mock.FileStore{}
	r := NewReconciler("project", files, nil, projectFolders)
	prev := model.MediaSet{Thumbnail: "/t.png", Gallery: model.StringList{"/g/1.png", "/g/2.png", "/g/3.png"}}

	out, err := r.Stage(context.Background(), prev, port.ChangeSet{
		KeptGallery: []string{"/g/3.png", "/g/1.png"},
		NewGallery:  []port.Upload{upload("b.png"), upload("a.png")},
	}, ProjectPolicy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := model.StringList{"/g/3.png", "/g/1.png", "/gallery/1-b.png", "/gallery/2-a.png"}
	if diff := cmp.Diff(want, out.Media.Gallery); diff != "" {
		t.Errorf("Gallery mismatch (-want +got):\n%s", diff)
	}
}

func TestStage_ValidationFailureMutatesNothing(t *testing.T) {
	tests := []struct {
		name     string
		previous model.MediaSet
		change   port.ChangeSet
		files    *mock.FileStore
		wantMsg  string
	}{
		{
			name:     "thumbnail removed",
			previous: model.MediaSet{Thumbnail: "/t.png", Gallery: model.StringList{"/g/1.png"}},
			change:   port.ChangeSet{ThumbnailDeleted: true, NewGallery: []port.Upload{upload("n.png")}},
			files:    &mock.FileStore{},
			wantMsg:  MsgThumbnailRequired,
		},
		{
			name:     "only gallery image deleted",
			previous: model.MediaSet{Thumbnail: "/t.png", Gallery: model.StringList{"/g/1.png"}},
			change:   port.ChangeSet{DeletedGallery: []string{"/g/1.png"}},
			files:    &mock.FileStore{},
			wantMsg:  MsgGalleryRequired,
		},
		{
			name:     "file rejected by store",
			previous: model.MediaSet{Thumbnail: "/t.png", Gallery: model.StringList{"/g/1.png"}},
			change:   port.ChangeSet{NewGallery: []port.Upload{upload("n.png")}},
			files:    &mock.FileStore{ValidateErr: &ValidationError{Field: "gallery", Msg: "unsupported file type"}},
			wantMsg:  "unsupported file type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReconciler("project", tc.files, &mock.MockDispatcher{}, projectFolders)
			out, err := r.Stage(context.Background(), tc.previous, tc.change, ProjectPolicy)
			if out != nil {
				t.Errorf("expected nil outcome, got %+v", out)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Msg != tc.wantMsg {
				t.Fatalf("expected ValidationError %q, got %v", tc.wantMsg, err)
			}
			if tc.files.Mutations() != 0 {
				t.Errorf("expected zero mutations, stored %v deleted %v", tc.files.Stored, tc.files.Deleted)
			}
		})
	}
}

func TestStage_StoreFailureRollsBack(t *testing.T) {
	boom := errors.New("disk full")
	files := &mock.FileStore{StoreErrAt: 3, StoreErr: boom}
	r := NewReconciler("project", files, &mock.MockDispatcher{}, projectFolders)
	th := upload("t.png")
	prev := model.MediaSet{Thumbnail: "/old.png", Gallery: model.StringList{"/g/1.png"}}

	_, err := r.Stage(context.Background(), prev, port.ChangeSet{
		NewThumbnail: &th,
		NewGallery:   []port.Upload{upload("a.png"), upload("b.png")},
	}, ProjectPolicy)

	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
	want := []string{"/thumbnails/1-t.png", "/gallery/2-a.png"}
	if diff := cmp.Diff(want, files.Deleted); diff != "" {
		t.Errorf("Deleted mismatch (-want +got):\n%s", diff)
	}
}

func TestStage_UnreadableUploadIsValidationError(t *testing.T) {
	bad := &ValidationError{Field: "b.png", Msg: "file is not a readable image"}
	files := &mock.FileStore{StoreErrAt: 2, StoreErr: bad}
	r := NewReconciler("project", files, &mock.MockDispatcher{}, projectFolders)
	prev := model.MediaSet{Thumbnail: "/old.png", Gallery: model.StringList{"/g/1.png"}}

	_, err := r.Stage(context.Background(), prev, port.ChangeSet{
		KeptGallery: []string{"/g/1.png"},
		NewGallery:  []port.Upload{upload("a.png"), upload("b.png")},
	}, ProjectPolicy)

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Msg != "file is not a readable image" {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	var se *StorageError
	if errors.As(err, &se) {
		t.Errorf("bad input must not surface as a StorageError: %v", err)
	}
	if diff := cmp.Diff([]string{"/gallery/1-a.png"}, files.Deleted); diff != "" {
		t.Errorf("Deleted mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscard_RemovesOnlyStoredFiles(t *testing.T) {
	files := &mock.FileStore{}
	r := NewReconciler("project", files, nil, projectFolders)
	th := upload("t.png")

	out, err := r.Stage(context.Background(), model.MediaSet{Thumbnail: "/old.png", Gallery: model.StringList{"/g/1.png"}},
		port.ChangeSet{NewThumbnail: &th}, ProjectPolicy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Discard(context.Background(), out)
	if diff := cmp.Diff([]string{"/thumbnails/1-t.png"}, files.Deleted); diff != "" {
		t.Errorf("Deleted mismatch (-want +got):\n%s", diff)
	}
}

func TestFinalise_DefersFailedDeletes(t *testing.T) {
	files := &mock.FileStore{DeleteErrs: map[string]error{"/g/2.png": errors.New("timeout")}}
	tasks := &mock.MockDispatcher{}
	r := NewReconciler("project", files, tasks, projectFolders)

	lingering := r.Finalise(context.Background(), &Outcome{Superseded: []string{"/g/1.png", "/g/2.png"}})

	if diff := cmp.Diff([]string{"/g/2.png"}, lingering); diff != "" {
		t.Errorf("lingering mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/g/2.png"}, tasks.PurgePaths); diff != "" {
		t.Errorf("PurgePaths mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/g/1.png"}, files.Deleted); diff != "" {
		t.Errorf("Deleted mismatch (-want +got):\n%s", diff)
	}
}

func TestFinalise_IdempotentDelete(t *testing.T) {
	files := &mock.FileStore{}
	r := NewReconciler("project", files, nil, projectFolders)
	out := &Outcome{Media: model.MediaSet{Thumbnail: "/t.png"}, Superseded: []string{"/g/gone.png"}}

	if l := r.Finalise(context.Background(), out); len(l) != 0 {
		t.Fatalf("first finalise left %v", l)
	}
	if l := r.Finalise(context.Background(), out); len(l) != 0 {
		t.Fatalf("second finalise left %v", l)
	}
	if out.Media.Thumbnail != "/t.png" {
		t.Errorf("media changed: %+v", out.Media)
	}
}

func TestPurge_RemovesEveryPath(t *testing.T) {
	files := &mock.FileStore{}
	r := NewReconciler("project", files, nil, projectFolders)

	r.Purge(context.Background(), model.MediaSet{Thumbnail: "/t.png", Gallery: model.StringList{"/g/1.png", "/g/2.png"}})

	want := []string{"/t.png", "/g/1.png", "/g/2.png"}
	if diff := cmp.Diff(want, files.Deleted); diff != "" {
		t.Errorf("Deleted mismatch (-want +got):\n%s", diff)
	}
}
