package mock

import (
	"context"
	"fmt"
	"io"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// FileStore implements port.FileStore for tests. Stored paths are
// "/<folder>/<n>-<filename>" where n counts Store calls.
type FileStore struct {
	// errors
	ValidateErr error
	// StoreErrAt fails the Store call with that 1-based index.
	StoreErrAt int
	StoreErr   error
	DeleteErrs map[string]error

	// captured inputs
	Validated []string
	Stored    []string
	Deleted   []string
	Bodies    map[string][]byte

	storeCalls int
}

func (m *FileStore) Validate(file port.Upload) error {
	m.Validated = append(m.Validated, file.Filename)
	return m.ValidateErr
}

func (m *FileStore) Store(ctx context.Context, file port.Upload, folder string) (string, error) {
	m.storeCalls++
	if m.StoreErrAt != 0 && m.storeCalls == m.StoreErrAt {
		return "", m.StoreErr
	}
	path := fmt.Sprintf("/%s/%d-%s", folder, m.storeCalls, file.Filename)
	if file.Reader != nil {
		if m.Bodies == nil {
			m.Bodies = map[string][]byte{}
		}
		b, _ := io.ReadAll(file.Reader)
		m.Bodies[path] = b
	}
	m.Stored = append(m.Stored, path)
	return path, nil
}

func (m *FileStore) Delete(ctx context.Context, path string) error {
	if err, ok := m.DeleteErrs[path]; ok && err != nil {
		return err
	}
	m.Deleted = append(m.Deleted, path)
	return nil
}

// Mutations reports whether any file was written or removed.
func (m *FileStore) Mutations() int {
	return len(m.Stored) + len(m.Deleted)
}
