package port

import "errors"

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)

var (
	ErrNotFound         = errors.New("persistence: record not found")
	ErrUnknownReference = errors.New("persistence: unknown related identifier")
	ErrDuplicate        = errors.New("persistence: duplicate value")
)
