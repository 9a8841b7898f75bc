package lantern

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Screenshot queues a labeled capture of the canvas. Captures are written by
// FlushScreenshots, which the App calls after the frame has been drawn.
func (c *Canvas) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// PendingScreenshots returns the number of queued captures.
func (c *Canvas) PendingScreenshots() int {
	return len(c.screenshotQueue)
}

// FlushScreenshots writes every queued capture to dir as
// <stamp>_<label>.png and returns the paths written. Failures are logged and
// the remaining captures are still attempted.
func (c *Canvas) FlushScreenshots(dir string) []string {
	if len(c.screenshotQueue) == 0 {
		return nil
	}
	defer func() { c.screenshotQueue = c.screenshotQueue[:0] }()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("screenshot: mkdir failed", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	img := c.snapshot()
	stamp := time.Now().Format("20060102_150405")

	var paths []string
	for _, label := range c.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			logger.Warn("screenshot failed", zap.String("label", label), zap.Error(err))
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// snapshot reads the canvas pixels and converts premultiplied RGBA to
// straight-alpha NRGBA.
func (c *Canvas) snapshot() *image.NRGBA {
	pixels := make([]byte, 4*c.w*c.h)
	c.image.ReadPixels(pixels)
	return unpremultiply(pixels, c.w, c.h)
}

func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
