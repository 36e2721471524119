package task

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueuePurgeFile(ctx context.Context, path string) error {
	return nil
}
