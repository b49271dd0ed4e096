// Package texture decodes image files into RGBA pixel data for GPU upload.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

// ErrTruncatedTGA is returned when pixel data ends early.
var ErrTruncatedTGA = errors.New("TGA data truncated")

// tgaHeader is the fixed 18-byte TGA file header.
type tgaHeader struct {
	idLength     int
	colorMapType byte
	imageType    byte
	width        int
	height       int
	bpp          int
	topToBottom  bool
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, fmt.Errorf("TGA data too short: %d bytes", len(data))
	}
	h := tgaHeader{
		idLength:     int(data[0]),
		colorMapType: data[1],
		imageType:    data[2],
		width:        int(data[12]) | int(data[13])<<8,
		height:       int(data[14]) | int(data[15])<<8,
		bpp:          int(data[16]),
		// bit 5 of the descriptor: origin at top
		topToBottom: data[17]&0x20 != 0,
	}

	if h.colorMapType != 0 {
		return h, fmt.Errorf("color-mapped TGA not supported")
	}
	if h.imageType != TGATypeUncompressed && h.imageType != TGATypeRLE {
		return h, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", h.imageType)
	}
	if h.bpp != 24 && h.bpp != 32 {
		return h, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", h.bpp)
	}
	if h.width == 0 || h.height == 0 {
		return h, fmt.Errorf("TGA has empty dimensions %dx%d", h.width, h.height)
	}
	return h, nil
}

// DecodeTGA decodes an uncompressed (type 2) or RLE (type 10) true-color TGA.
// The returned image always has its origin at the top-left.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}

	offset := tgaHeaderSize + h.idLength
	if offset > len(data) {
		return nil, ErrTruncatedTGA
	}

	d := tgaDecoder{
		header:  h,
		src:     data[offset:],
		img:     image.NewRGBA(image.Rect(0, 0, h.width, h.height)),
		bytesPP: h.bpp / 8,
	}

	if h.imageType == TGATypeUncompressed {
		err = d.decodeRaw()
	} else {
		err = d.decodeRLE()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	header  tgaHeader
	src     []byte
	pos     int
	img     *image.RGBA
	bytesPP int
	written int
}

// readPixel reads one BGR(A) pixel from the source.
func (d *tgaDecoder) readPixel() (color.RGBA, bool) {
	if d.pos+d.bytesPP > len(d.src) {
		return color.RGBA{}, false
	}
	p := d.src[d.pos : d.pos+d.bytesPP]
	d.pos += d.bytesPP

	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bytesPP == 4 {
		c.A = p[3]
	}
	return c, true
}

// put writes the next pixel in file order.
func (d *tgaDecoder) put(c color.RGBA) {
	w := d.header.width
	x := d.written % w
	y := d.written / w
	if !d.header.topToBottom {
		y = d.header.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.written++
}

func (d *tgaDecoder) total() int {
	return d.header.width * d.header.height
}

func (d *tgaDecoder) decodeRaw() error {
	if len(d.src) < d.total()*d.bytesPP {
		return ErrTruncatedTGA
	}
	for d.written < d.total() {
		c, _ := d.readPixel()
		d.put(c)
	}
	return nil
}

func (d *tgaDecoder) decodeRLE() error {
	for d.written < d.total() {
		if d.pos >= len(d.src) {
			return ErrTruncatedTGA
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// run-length packet: one pixel repeated
			c, ok := d.readPixel()
			if !ok {
				return ErrTruncatedTGA
			}
			for i := 0; i < count && d.written < d.total(); i++ {
				d.put(c)
			}
			continue
		}

		for i := 0; i < count && d.written < d.total(); i++ {
			c, ok := d.readPixel()
			if !ok {
				return ErrTruncatedTGA
			}
			d.put(c)
		}
	}
	return nil
}
