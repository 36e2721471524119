package cache

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetPortfolio(ctx context.Context) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagPortfolio(ctx context.Context) (string, error) {
	return "", nil
}

func (n *NoopCache) SetPortfolio(ctx context.Context, data []byte, ttl time.Duration) {}

func (n *NoopCache) SetEtagPortfolio(ctx context.Context, etag string, ttl time.Duration) {}

func (n *NoopCache) DeletePortfolio(ctx context.Context) error { return nil }
