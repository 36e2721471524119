package mock

import "context"

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	PurgeCalled bool
	PurgePaths  []string
	PurgeErr    error
}

func (m *MockDispatcher) EnqueuePurgeFile(ctx context.Context, path string) error {
	m.PurgeCalled = true
	m.PurgePaths = append(m.PurgePaths, path)
	return m.PurgeErr
}
