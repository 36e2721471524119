package port

import "io"

// Upload is a file submitted with a form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ChangeSet describes what one update request wants to change about an
// entity's media. It only lives for the duration of the request.
//
// KeptGallery and DeletedGallery are two ways of saying the same thing.
// When KeptGallery is non-nil it is authoritative and every previous gallery
// path missing from it is deleted; a path listed in both is deleted.
// Otherwise the paths listed in DeletedGallery are removed and the rest are
// kept.
type ChangeSet struct {
	NewThumbnail     *Upload
	ThumbnailDeleted bool
	NewGallery       []Upload
	KeptGallery      []string
	DeletedGallery   []string
}
