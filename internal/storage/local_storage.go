package storage

import (
	"context"
	"io"
	"io/fs"
	"mime"
	"path"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/spf13/afero"
)

// LocalStorage keeps files in a directory tree, one file per key.
type LocalStorage struct {
	fs afero.Fs
}

// compile-time check: *LocalStorage must satisfy port.Storage
var _ port.Storage = (*LocalStorage)(nil)

// NewLocalStorage stores files below root on the host filesystem.
func NewLocalStorage(root string) *LocalStorage {
	return NewLocalStorageFs(afero.NewBasePathFs(afero.NewOsFs(), root))
}

// NewLocalStorageFs stores files on an arbitrary afero filesystem.
func NewLocalStorageFs(fsys afero.Fs) *LocalStorage {
	return &LocalStorage{fs: fsys}
}

func (s *LocalStorage) Init(ctx context.Context) error {
	return mapFsErr(s.fs.MkdirAll("/", 0o755))
}

// SaveFile writes through a temporary file and renames it into place once
// synced, so a key never points at a partial file.
func (s *LocalStorage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	logger.Infof(ctx, "saving file %q to local storage...", fileKey)

	name := keyPath(fileKey)
	dir, base := path.Split(name)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return mapFsErr(err)
	}

	tmp := path.Join(dir, "."+base+".tmp")
	f, err := s.fs.Create(tmp)
	if err != nil {
		return mapFsErr(err)
	}
	if _, err := io.Copy(f, reader); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(tmp)
		return mapFsErr(err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(tmp)
		return mapFsErr(err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(tmp)
		return mapFsErr(err)
	}
	return mapFsErr(s.fs.Rename(tmp, name))
}

func (s *LocalStorage) RemoveFile(ctx context.Context, fileKey string) error {
	logger.Infof(ctx, "removing file %q from local storage...", fileKey)
	return mapFsErr(s.fs.Remove(keyPath(fileKey)))
}

func (s *LocalStorage) GetFile(ctx context.Context, fileKey string) (io.ReadCloser, error) {
	f, err := s.fs.Open(keyPath(fileKey))
	if err != nil {
		return nil, mapFsErr(err)
	}
	return f, nil
}

func (s *LocalStorage) StatFile(ctx context.Context, fileKey string) (port.FileInfo, error) {
	fi, err := s.fs.Stat(keyPath(fileKey))
	if err != nil {
		return port.FileInfo{}, mapFsErr(err)
	}
	if fi.IsDir() {
		return port.FileInfo{}, port.ErrObjectNotFound
	}
	return fileInfo(fileKey, fi), nil
}

func (s *LocalStorage) ListFiles(ctx context.Context, prefix string) ([]port.FileInfo, error) {
	var out []port.FileInfo
	err := afero.Walk(s.fs, "/", func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() || strings.HasPrefix(fi.Name(), ".") {
			return nil
		}
		key := strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(p, "\\", "/")), "/")
		if strings.HasPrefix(key, prefix) {
			out = append(out, fileInfo(key, fi))
		}
		return nil
	})
	if err != nil {
		return nil, mapFsErr(err)
	}
	return out, nil
}

func keyPath(fileKey string) string {
	return path.Clean("/" + fileKey)
}

func fileInfo(key string, fi fs.FileInfo) port.FileInfo {
	return port.FileInfo{
		Key:          key,
		SizeBytes:    fi.Size(),
		ContentType:  mime.TypeByExtension(path.Ext(key)),
		LastModified: fi.ModTime(),
	}
}
