package portfolio

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// Invalidate drops the cached landing page after an admin write. A failure
// only means visitors see stale content until the TTL expires.
func Invalidate(ctx context.Context, cache port.Cache) {
	if cache == nil {
		return
	}
	if err := cache.DeletePortfolio(ctx); err != nil {
		logger.Warnf(ctx, "⚠️  failed to invalidate portfolio cache: %v", err)
	}
}
