package port

import "context"

// TaskDispatcher enqueues asynchronous maintenance tasks.
type TaskDispatcher interface {
	EnqueuePurgeFile(ctx context.Context, path string) error
}
