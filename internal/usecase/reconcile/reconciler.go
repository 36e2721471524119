package reconcile

import (
	"context"
	"errors"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/metrics"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

const (
	FolderThumbnails = "thumbnails"
	FolderGallery    = "gallery"
	FolderProfile    = "profile"
)

// Folders names where an entity's thumbnail and gallery files are stored.
type Folders struct {
	Thumbnail string
	Gallery   string
}

// Outcome is a staged change: the new files are durable but the entity
// still points at its previous media.
type Outcome struct {
	Media      model.MediaSet
	Stored     []string
	Superseded []string
}

// Reconciler applies change sets to an entity's media through a FileStore.
//
// The expected call order is Stage, then commit the Outcome's media to the
// database, then Finalise. Discard undoes Stage when the commit fails.
type Reconciler struct {
	files   port.FileStore
	tasks   port.TaskDispatcher
	folders Folders
	entity  string
}

// NewReconciler builds a Reconciler for one kind of entity. Deletions that
// fail in Finalise or Purge are handed to tasks for a later retry.
func NewReconciler(entity string, files port.FileStore, tasks port.TaskDispatcher, folders Folders) *Reconciler {
	return &Reconciler{files: files, tasks: tasks, folders: folders, entity: entity}
}

// Stage validates the change and stores the new files. Nothing is deleted.
// If any store fails the files stored so far are removed again and a
// StorageError is returned.
func (r *Reconciler) Stage(ctx context.Context, previous model.MediaSet, change port.ChangeSet, policy Policy) (*Outcome, error) {
	plan, err := PlanChange(previous, change, policy)
	if err != nil {
		metrics.ReconciliationsTotal.WithLabelValues(r.entity, "invalid").Inc()
		return nil, err
	}

	if plan.NewThumbnail != nil {
		if err := r.files.Validate(*plan.NewThumbnail); err != nil {
			metrics.ReconciliationsTotal.WithLabelValues(r.entity, "invalid").Inc()
			return nil, err
		}
	}
	for _, f := range plan.NewGallery {
		if err := r.files.Validate(f); err != nil {
			metrics.ReconciliationsTotal.WithLabelValues(r.entity, "invalid").Inc()
			return nil, err
		}
	}

	out := &Outcome{Superseded: plan.Superseded}
	out.Media.Thumbnail = plan.Thumbnail

	if plan.NewThumbnail != nil {
		path, err := r.store(ctx, *plan.NewThumbnail, r.folders.Thumbnail)
		if err != nil {
			r.Discard(ctx, out)
			return nil, err
		}
		out.Stored = append(out.Stored, path)
		out.Media.Thumbnail = path
	}

	gallery := make(model.StringList, 0, len(plan.Kept)+len(plan.NewGallery))
	gallery = append(gallery, plan.Kept...)
	for _, f := range plan.NewGallery {
		path, err := r.store(ctx, f, r.folders.Gallery)
		if err != nil {
			r.Discard(ctx, out)
			return nil, err
		}
		out.Stored = append(out.Stored, path)
		gallery = append(gallery, path)
	}
	out.Media.Gallery = gallery

	return out, nil
}

func (r *Reconciler) store(ctx context.Context, f port.Upload, folder string) (string, error) {
	path, err := r.files.Store(ctx, f, folder)
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		metrics.ReconciliationsTotal.WithLabelValues(r.entity, "invalid").Inc()
		return "", err
	}
	if err != nil {
		metrics.ReconciliationsTotal.WithLabelValues(r.entity, "store_failed").Inc()
		logger.Errorf(ctx, "❌  failed to store %q in %s: %v", f.Filename, folder, err)
		return "", &StorageError{Op: "store", Path: f.Filename, Err: err}
	}
	metrics.FilesStoredTotal.WithLabelValues(folder).Inc()
	return path, nil
}

// Discard removes the files Stage stored. Used when the commit failed.
func (r *Reconciler) Discard(ctx context.Context, out *Outcome) {
	if out == nil {
		return
	}
	metrics.ReconciliationsTotal.WithLabelValues(r.entity, "discarded").Inc()
	for _, path := range out.Stored {
		r.remove(ctx, path)
	}
}

// Finalise removes the superseded files of a committed Outcome. It returns
// the paths that could not be removed; each of them has been handed to the
// task dispatcher.
func (r *Reconciler) Finalise(ctx context.Context, out *Outcome) []string {
	if out == nil {
		return nil
	}
	metrics.ReconciliationsTotal.WithLabelValues(r.entity, "committed").Inc()
	return r.removeAll(ctx, out.Superseded)
}

// Purge removes every file of a deleted entity's media set.
func (r *Reconciler) Purge(ctx context.Context, media model.MediaSet) []string {
	return r.removeAll(ctx, media.Paths())
}

func (r *Reconciler) removeAll(ctx context.Context, paths []string) []string {
	var lingering []string
	for _, path := range paths {
		if !r.remove(ctx, path) {
			lingering = append(lingering, path)
		}
	}
	return lingering
}

func (r *Reconciler) remove(ctx context.Context, path string) bool {
	err := r.files.Delete(ctx, path)
	if err == nil {
		metrics.FilesDeletedTotal.WithLabelValues("ok").Inc()
		return true
	}

	metrics.FilesDeletedTotal.WithLabelValues("failed").Inc()
	logger.Warnf(ctx, "⚠️  failed to delete %q, deferring: %v", path, &StorageError{Op: "delete", Path: path, Err: err})

	if r.tasks == nil {
		return false
	}
	if err := r.tasks.EnqueuePurgeFile(ctx, path); err != nil {
		metrics.PurgeTasksEnqueued.WithLabelValues("failed").Inc()
		logger.Errorf(ctx, "❌  failed to enqueue purge of %q: %v", path, err)
		return false
	}
	metrics.PurgeTasksEnqueued.WithLabelValues("ok").Inc()
	return false
}
