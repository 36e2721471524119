package mock

import (
	"io"
)

// MockFileOptimiser implements port.FileOptimiser for tests.
type MockFileOptimiser struct {
	Out     []byte
	OutMime string
	Err     error

	Called  bool
	InMime  string
	InBytes []byte
}

func (m *MockFileOptimiser) Compress(mimeType string, r io.Reader) ([]byte, string, error) {
	m.Called = true
	m.InMime = mimeType
	m.InBytes, _ = io.ReadAll(r)
	if m.Err != nil {
		return nil, "", m.Err
	}
	return m.Out, m.OutMime, nil
}
