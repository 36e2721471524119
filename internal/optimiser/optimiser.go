package optimiser

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultQuality  = 80
	DefaultMaxWidth = 1920
	// MaxPixels bounds width*height before any pixel buffer is allocated.
	MaxPixels = 40_000_000
)

type FileOptimiser struct {
	webpEnc  WebPEncoder
	quality  int
	maxWidth int
}

// compile-time check: *FileOptimiser must satisfy port.FileOptimiser
var _ port.FileOptimiser = (*FileOptimiser)(nil)

func NewFileOptimiser(webpEnc WebPEncoder, quality, maxWidth int) *FileOptimiser {
	logger.Info(context.Background(), "initialising optimiser...", "quality", quality, "max_width", maxWidth)
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &FileOptimiser{
		webpEnc:  webpEnc,
		quality:  quality,
		maxWidth: maxWidth,
	}
}

// Compress converts JPEG, PNG and WebP input to lossy WebP. Images wider than
// the configured maximum are scaled down first, keeping their aspect ratio.
func (o *FileOptimiser) Compress(mimeType string, r io.Reader) ([]byte, string, error) {
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp":
	default:
		return nil, "", fmt.Errorf("optimiser: unsupported mime type %q", mimeType)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("optimiser: failed to read input: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("optimiser: %w: %v", port.ErrUnreadableImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, "", fmt.Errorf("optimiser: %w: %dx%d", port.ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := o.webpEnc.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("optimiser: %w: %v", port.ErrUnreadableImage, err)
	}

	img = o.fit(img)

	buf := &bytes.Buffer{}
	if err := o.webpEnc.Encode(img, o.quality, buf); err != nil {
		return nil, "", fmt.Errorf("optimiser: failed to encode WebP: %w", err)
	}
	return buf.Bytes(), "image/webp", nil
}

func (o *FileOptimiser) fit(img image.Image) image.Image {
	b := img.Bounds()
	if o.maxWidth <= 0 || b.Dx() <= o.maxWidth {
		return img
	}
	h := b.Dy() * o.maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, o.maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
