package reconcile

import (
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// Policy states which media an entity cannot live without.
type Policy struct {
	ThumbnailRequired bool
	GalleryRequired   bool
}

var (
	ProjectPolicy = Policy{ThumbnailRequired: true, GalleryRequired: true}
	AboutPolicy   = Policy{}
)

// Plan is the outcome of a change set applied to a media set, before any
// file is touched.
type Plan struct {
	// Thumbnail is the surviving thumbnail when no new one is uploaded.
	Thumbnail    string
	NewThumbnail *port.Upload
	Kept         []string
	NewGallery   []port.Upload
	// Superseded lists the paths to remove once the new state is committed.
	Superseded []string
}

// PlanChange computes the final media layout for previous and change and
// checks it against policy. It does no I/O.
//
// A new thumbnail wins over the delete flag. Gallery paths not owned by
// previous are never scheduled for deletion.
func PlanChange(previous model.MediaSet, change port.ChangeSet, policy Policy) (*Plan, error) {
	p := &Plan{NewThumbnail: change.NewThumbnail, NewGallery: change.NewGallery}

	var superseded []string
	switch {
	case change.NewThumbnail != nil:
		superseded = appendPath(superseded, previous.Thumbnail)
	case change.ThumbnailDeleted:
		superseded = appendPath(superseded, previous.Thumbnail)
	default:
		p.Thumbnail = previous.Thumbnail
	}

	kept, deleted := splitGallery(previous.Gallery, change)
	p.Kept = kept
	for _, path := range deleted {
		superseded = appendPath(superseded, path)
	}

	if policy.ThumbnailRequired && p.NewThumbnail == nil && p.Thumbnail == "" {
		return nil, &ValidationError{Field: "thumbnail", Msg: MsgThumbnailRequired}
	}
	if policy.GalleryRequired && len(p.Kept)+len(p.NewGallery) == 0 {
		return nil, &ValidationError{Field: "gallery", Msg: MsgGalleryRequired}
	}

	// a path still referenced by the final state must survive
	live := make(map[string]struct{}, len(p.Kept)+1)
	for _, path := range p.Kept {
		live[path] = struct{}{}
	}
	if p.Thumbnail != "" {
		live[p.Thumbnail] = struct{}{}
	}
	p.Superseded = make([]string, 0, len(superseded))
	for _, path := range superseded {
		if _, ok := live[path]; !ok {
			p.Superseded = append(p.Superseded, path)
		}
	}

	return p, nil
}

// splitGallery partitions previous into kept and deleted paths. A non-nil
// kept list is authoritative, minus any path also listed as deleted;
// otherwise the deleted list is.
func splitGallery(previous []string, change port.ChangeSet) (kept, deleted []string) {
	kept = make([]string, 0, len(previous))

	drop := make(map[string]struct{}, len(change.DeletedGallery))
	for _, path := range change.DeletedGallery {
		drop[path] = struct{}{}
	}

	if change.KeptGallery != nil {
		want := make(map[string]struct{}, len(change.KeptGallery))
		for _, path := range change.KeptGallery {
			if _, dup := want[path]; dup {
				continue
			}
			if _, gone := drop[path]; gone {
				continue
			}
			want[path] = struct{}{}
			kept = append(kept, path)
		}
		for _, path := range previous {
			if _, ok := want[path]; !ok {
				deleted = append(deleted, path)
			}
		}
		return kept, deleted
	}

	for _, path := range previous {
		if _, ok := drop[path]; ok {
			deleted = append(deleted, path)
			continue
		}
		kept = append(kept, path)
	}
	return kept, deleted
}

// VerifyKept fails when kept names a path that is not part of previous.
// Callers run it before staging; PlanChange assumes it holds.
func VerifyKept(previous, kept []string) error {
	owned := make(map[string]struct{}, len(previous))
	for _, path := range previous {
		owned[path] = struct{}{}
	}
	for _, path := range kept {
		if _, ok := owned[path]; !ok {
			return &ValidationError{Field: "oldGallery", Msg: MsgUnknownGalleryPath}
		}
	}
	return nil
}

func appendPath(paths []string, path string) []string {
	if path == "" {
		return paths
	}
	for _, p := range paths {
		if p == path {
			return paths
		}
	}
	return append(paths, path)
}
