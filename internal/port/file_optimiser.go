package port

import (
	"errors"
	"io"
)

var (
	// ErrUnreadableImage means the upload looked like an image but did not decode.
	ErrUnreadableImage = errors.New("image could not be decoded")
	// ErrImageTooLarge means the declared dimensions exceed the pixel budget.
	ErrImageTooLarge = errors.New("image dimensions too large")
)

// FileOptimiser re-encodes uploaded images before they are stored.
// It returns the optimised bytes and their MIME type.
type FileOptimiser interface {
	Compress(mimeType string, r io.Reader) ([]byte, string, error)
}
