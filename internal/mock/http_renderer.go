package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// MockHTTPRenderer implements port.HTTPRenderer for tests.
type MockHTTPRenderer struct {
	Data []byte
	Etag string
	Err  error

	Called bool
	Getter port.PortfolioGetter
}

func (m *MockHTTPRenderer) RenderPortfolio(ctx context.Context, getter port.PortfolioGetter) ([]byte, string, error) {
	m.Called = true
	m.Getter = getter
	return m.Data, m.Etag, m.Err
}
