package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/usecase/reconcile"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// IsImage reports whether mimeType is an accepted upload type.
func IsImage(mimeType string) bool {
	_, ok := extensions[mimeType]
	return ok
}

// FileStore names, optionally optimises and saves uploads on a port.Storage.
// Paths it returns are the object key with a leading slash.
type FileStore struct {
	strg    port.Storage
	opt     port.FileOptimiser
	maxSize int64
	newID   func() uuid.UUID
}

// compile-time check: *FileStore must satisfy port.FileStore
var _ port.FileStore = (*FileStore)(nil)

// New builds a FileStore. opt may be nil to store uploads untouched.
func New(strg port.Storage, opt port.FileOptimiser, maxSize int64) *FileStore {
	return &FileStore{strg: strg, opt: opt, maxSize: maxSize, newID: uuid.NewUUID}
}

func (s *FileStore) Validate(f port.Upload) error {
	if f.Size <= 0 || f.Reader == nil {
		return &reconcile.ValidationError{Field: f.Filename, Msg: "file is empty"}
	}
	if s.maxSize > 0 && f.Size > s.maxSize {
		return &reconcile.ValidationError{Field: f.Filename, Msg: fmt.Sprintf("file exceeds %d bytes", s.maxSize)}
	}
	if !IsImage(f.ContentType) {
		return &reconcile.ValidationError{Field: f.Filename, Msg: fmt.Sprintf("unsupported file type %q", f.ContentType)}
	}
	return nil
}

// Store saves f under folder with a fresh identifier in its name, so two
// calls never return the same path.
func (s *FileStore) Store(ctx context.Context, f port.Upload, folder string) (string, error) {
	if err := s.Validate(f); err != nil {
		return "", err
	}

	body := f.Reader
	size := f.Size
	mimeType := f.ContentType
	if s.opt != nil {
		out, outType, err := s.opt.Compress(f.ContentType, f.Reader)
		switch {
		case errors.Is(err, port.ErrUnreadableImage):
			return "", &reconcile.ValidationError{Field: f.Filename, Msg: "file is not a readable image"}
		case errors.Is(err, port.ErrImageTooLarge):
			return "", &reconcile.ValidationError{Field: f.Filename, Msg: "image dimensions too large"}
		case err != nil:
			return "", fmt.Errorf("optimise %q: %w", f.Filename, err)
		}
		logger.Debugf(ctx, "optimised %q from %d to %d bytes", f.Filename, f.Size, len(out))
		body, size, mimeType = bytes.NewReader(out), int64(len(out)), outType
	}

	key := fmt.Sprintf("%s/%s-%s%s", folder, s.newID(), baseName(f.Filename), extensions[mimeType])
	opts := map[string]string{
		"Content-Type":  mimeType,
		"Cache-Control": "public, max-age=31536000, immutable",
	}
	if err := s.strg.SaveFile(ctx, key, body, size, opts); err != nil {
		return "", err
	}
	return "/" + key, nil
}

// Delete removes the file at path. A missing file is not an error.
func (s *FileStore) Delete(ctx context.Context, p string) error {
	key := KeyFromPath(p)
	if key == "" {
		return nil
	}
	err := s.strg.RemoveFile(ctx, key)
	if errors.Is(err, port.ErrObjectNotFound) {
		return nil
	}
	return err
}

// KeyFromPath turns a stored path into its object key.
func KeyFromPath(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// PathFromKey is the inverse of KeyFromPath.
func PathFromKey(key string) string {
	return "/" + key
}

// baseName keeps a readable, URL-safe stem of the uploaded name.
func baseName(filename string) string {
	stem := strings.TrimSuffix(path.Base(strings.ReplaceAll(filename, "\\", "/")), path.Ext(filename))
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(stem) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
		if b.Len() >= 60 {
			break
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "file"
	}
	return out
}
