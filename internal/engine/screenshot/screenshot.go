// Package screenshot saves rendered frames as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Writer names and writes screenshot files into a directory.
type Writer struct {
	dir    string
	prefix string
	now    func() time.Time

	last string // stamp of the previous name
	seq  int
}

// NewWriter creates a writer for dir. An empty dir means the working directory.
func NewWriter(dir, prefix string) *Writer {
	return &Writer{dir: dir, prefix: prefix, now: time.Now}
}

// FromPixels builds an image from bottom-up RGBA rows as returned by
// glReadPixels.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	rowSize := width * 4
	if width <= 0 || height <= 0 || len(pixels) != rowSize*height {
		return nil, fmt.Errorf("pixel data size mismatch: %dx%d needs %d bytes, got %d",
			width, height, rowSize*height, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowSize:][:rowSize]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img, nil
}

// Filename returns a path for the next screenshot. Names carry milliseconds;
// repeated calls within the same millisecond get a counter suffix.
func (w *Writer) Filename() string {
	stamp := w.now().Format("2006-01-02_15-04-05.000")
	if stamp == w.last {
		w.seq++
	} else {
		w.last, w.seq = stamp, 0
	}

	name := fmt.Sprintf("%s_%s.png", w.prefix, stamp)
	if w.seq > 0 {
		name = fmt.Sprintf("%s_%s_%d.png", w.prefix, stamp, w.seq)
	}
	if w.dir != "" {
		name = filepath.Join(w.dir, name)
	}
	return name
}

// Save encodes img as PNG and returns the written path.
func (w *Writer) Save(img image.Image) (string, error) {
	if w.dir != "" {
		if err := os.MkdirAll(w.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := w.Filename()
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
