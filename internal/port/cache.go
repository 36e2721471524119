package port

import (
	"context"
	"time"
)

// Cache stores the rendered landing page and its ETag.
type Cache interface {
	GetPortfolio(ctx context.Context) ([]byte, error)
	GetEtagPortfolio(ctx context.Context) (string, error)
	SetPortfolio(ctx context.Context, data []byte, ttl time.Duration)
	SetEtagPortfolio(ctx context.Context, etag string, ttl time.Duration)
	DeletePortfolio(ctx context.Context) error
}
