package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// Options controls how decoded images are prepared for upload.
type Options struct {
	// MaxSize limits the larger dimension; bigger images are scaled down.
	// Zero disables the limit.
	MaxSize int
	// FlipY puts the first row at the bottom, matching OpenGL texture
	// coordinates where v=0 is the bottom edge.
	FlipY bool
}

// Load reads and decodes an image file.
func Load(path string, opts Options) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}
	img, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return Prepare(img, opts), nil
}

// Decode decodes image bytes. TGA has no magic number so it is selected by
// extension; everything else is sniffed by the registered image decoders
// (PNG, JPEG, GIF, BMP, TIFF).
func Decode(data []byte, ext string) (image.Image, error) {
	if strings.EqualFold(ext, ".tga") {
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, err
		}
		return img, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Prepare converts img to a zero-origin RGBA image, scaled and flipped
// according to opts.
func Prepare(img image.Image, opts Options) *image.RGBA {
	b := img.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), opts.MaxSize)

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(rgba, rgba.Bounds(), img, b, xdraw.Src, nil)
	}

	if opts.FlipY {
		FlipVertical(rgba)
	}
	return rgba
}

// FlipVertical mirrors the image rows in place.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	stride := img.Stride
	row := make([]byte, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// fitSize scales (w, h) down so neither exceeds maxSize, keeping the aspect
// ratio and at least one pixel per side.
func fitSize(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		nh := h * maxSize / w
		if nh < 1 {
			nh = 1
		}
		return maxSize, nh
	}
	nw := w * maxSize / h
	if nw < 1 {
		nw = 1
	}
	return nw, maxSize
}

// Checker returns a two-color checkerboard used when a texture is missing.
func Checker(size, cell int, a, b [4]uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cell <= 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			i := img.PixOffset(x, y)
			copy(img.Pix[i:i+4], c[:])
		}
	}
	return img
}
