package cartoon

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// ImageSurface is a Surface whose pixels can be read back.
type ImageSurface interface {
	Surface
	Image() image.Image
}

// Composite paints bg and then, in order, every visible canvas whose
// surface is an ImageSurface onto a new w x h image.
func Composite(w, h int, bg RGBA, canvases ...*Canvas) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg.NRGBA()), image.Point{}, draw.Src)
	for _, c := range canvases {
		if c == nil || c.Hidden {
			continue
		}
		is, ok := c.Surface().(ImageSurface)
		if !ok {
			continue
		}
		draw.Draw(dst, dst.Bounds(), is.Image(), image.Point{}, draw.Over)
	}
	return dst
}

// SnapshotPath returns the file name for frame n of an export, with an
// optional label.
func SnapshotPath(dir string, n int, label string) string {
	if label == "" {
		return filepath.Join(dir, fmt.Sprintf("frame_%06d.png", n))
	}
	return filepath.Join(dir, fmt.Sprintf("frame_%06d_%s.png", n, sanitizeLabel(label)))
}

// WritePNG encodes img to a PNG file at path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
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
