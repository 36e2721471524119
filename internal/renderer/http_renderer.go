package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
	ttl   time.Duration
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation. Rendered pages
// are cached for ttl or until a write invalidates them.
func NewHTTPRenderer(cache port.Cache, ttl time.Duration) port.HTTPRenderer {
	return &httpRenderer{cache: cache, ttl: ttl}
}

// RenderPortfolio fetches the landing page either from cache or from the wrapped
// use case. It returns the JSON encoded output and a quoted ETag string.
func (r *httpRenderer) RenderPortfolio(ctx context.Context, getter port.PortfolioGetter) ([]byte, string, error) {
	raw, err := r.cache.GetPortfolio(ctx)
	etag, errEtag := r.cache.GetEtagPortfolio(ctx)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetPortfolio(ctx)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = ETag(raw)
	r.cache.SetPortfolio(ctx, raw, r.ttl)
	r.cache.SetEtagPortfolio(ctx, etag, r.ttl)

	return raw, etag, nil
}

// ETag returns the quoted checksum used as entity tag for raw.
func ETag(raw []byte) string {
	return fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
}
