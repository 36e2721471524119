package mock

import (
	"context"
	"io"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// Storage implements port.Storage for tests.
type Storage struct {
	// stored values
	StatInfoOut port.FileInfo
	GetOut      io.ReadCloser
	ListOut     []port.FileInfo

	// captured inputs
	ObjectKey   string
	SavedKeys   []string
	RemovedKeys []string
	SavedOpts   map[string]string
	ListPrefix  string

	// errors
	InitErr   error
	StatErr   error
	RemoveErr error
	GetErr    error
	SaveErr   error
	ListErr   error

	// call flags
	InitCalled   bool
	StatCalled   bool
	RemoveCalled bool
	GetCalled    bool
	SaveCalled   bool
	ListCalled   bool
}

func (m *Storage) Init(ctx context.Context) error {
	m.InitCalled = true
	return m.InitErr
}

func (m *Storage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.ObjectKey = fileKey
	m.SavedOpts = opts
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SavedKeys = append(m.SavedKeys, fileKey)
	return nil
}

func (m *Storage) RemoveFile(ctx context.Context, fileKey string) error {
	m.RemoveCalled = true
	m.ObjectKey = fileKey
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.RemovedKeys = append(m.RemovedKeys, fileKey)
	return nil
}

func (m *Storage) GetFile(ctx context.Context, fileKey string) (io.ReadCloser, error) {
	m.GetCalled = true
	m.ObjectKey = fileKey
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.GetOut, nil
}

func (m *Storage) StatFile(ctx context.Context, fileKey string) (port.FileInfo, error) {
	m.StatCalled = true
	m.ObjectKey = fileKey
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) ListFiles(ctx context.Context, prefix string) ([]port.FileInfo, error) {
	m.ListCalled = true
	m.ListPrefix = prefix
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []port.FileInfo
	for _, fi := range m.ListOut {
		if len(fi.Key) >= len(prefix) && fi.Key[:len(prefix)] == prefix {
			out = append(out, fi)
		}
	}
	return out, nil
}
