package port

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a stored file.
type FileInfo struct {
	Key          string
	SizeBytes    int64
	ContentType  string
	LastModified time.Time
}

// Storage defines object storage operations on the media bucket (or directory).
type Storage interface {
	Init(ctx context.Context) error
	SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	RemoveFile(ctx context.Context, fileKey string) error
	GetFile(ctx context.Context, fileKey string) (io.ReadCloser, error)
	StatFile(ctx context.Context, fileKey string) (FileInfo, error)
	ListFiles(ctx context.Context, prefix string) ([]FileInfo, error)
}

// FileStore is the file collaborator of media reconciliation. Store must
// return a unique path per call and only return once the file is durable.
// Delete must not fail when the path is already gone.
type FileStore interface {
	Validate(file Upload) error
	Store(ctx context.Context, file Upload, folder string) (string, error)
	Delete(ctx context.Context, path string) error
}
