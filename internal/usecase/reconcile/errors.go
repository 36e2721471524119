package reconcile

import "fmt"

const (
	MsgThumbnailRequired  = "thumbnail required"
	MsgGalleryRequired    = "at least one image required"
	MsgMalformedIDs       = "malformed identifier list"
	MsgUnknownGalleryPath = "kept gallery path does not belong to this entity"
)

// ValidationError reports an invariant the submitted change would violate.
// It is raised before any file is written or removed.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// StorageError reports a file that could not be saved or removed.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// PersistenceError reports a failed database write. Nothing of the
// attempted change was applied.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
