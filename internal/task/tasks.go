package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypePurgeFile    = "file:purge"
	TypeSweepOrphans = "file:sweep-orphans"
)

type PurgeFilePayload struct {
	Path string `json:"path"`
}

// NewPurgeFileTask creates an Asynq task that removes one stored file.
// Identical paths are deduplicated while a task is pending.
func NewPurgeFileTask(path string) (*asynq.Task, error) {
	p := PurgeFilePayload{Path: path}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal purge-file payload: %w", err)
	}
	return asynq.NewTask(TypePurgeFile, data, asynq.MaxRetry(10), asynq.Unique(time.Hour)), nil
}

// ParsePurgeFilePayload parses the task payload to PurgeFilePayload.
func ParsePurgeFilePayload(t *asynq.Task) (PurgeFilePayload, error) {
	var p PurgeFilePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return PurgeFilePayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	if p.Path == "" {
		return PurgeFilePayload{}, fmt.Errorf("purge-file payload has no path")
	}
	return p, nil
}

// NewSweepOrphansTask creates the periodic orphan sweep task.
func NewSweepOrphansTask() *asynq.Task {
	return asynq.NewTask(TypeSweepOrphans, nil, asynq.MaxRetry(1))
}
