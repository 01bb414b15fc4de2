/*
Package pal implements a decoder and encoder for raw palette files.

A raw palette is a headerless sequence of colors, each stored as three bytes
of red, green and blue. The NES system palette is typically distributed this
way as a 192 byte file of 64 colors.
*/
package pal

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const colorSize = 3

// ErrPartialColor is returned by Decode when the data ends part way through
// a color.
var ErrPartialColor = errors.New("pal: partial color at end of data")

// Decode reads a raw palette from r. Every color in the result is opaque.
func Decode(r io.Reader) (color.Palette, error) {
	var p color.Palette
	var tmp [colorSize]byte
	for {
		_, err := io.ReadFull(r, tmp[:])
		switch err {
		case nil:
		case io.EOF:
			return p, nil
		case io.ErrUnexpectedEOF:
			return nil, ErrPartialColor
		default:
			return nil, err
		}
		p = append(p, color.RGBA{tmp[0], tmp[1], tmp[2], 0xff})
	}
}

// Encode writes the palette p to w as raw 8-bit RGB triples. Alpha is
// discarded.
func Encode(w io.Writer, p color.Palette) error {
	b := make([]byte, 0, len(p)*colorSize)
	for _, c := range p {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		b = append(b, rgba.R, rgba.G, rgba.B)
	}
	_, err := w.Write(b)
	return err
}

// FromImage returns a palette of at most n colors that best represents m.
func FromImage(m image.Image, n int) color.Palette {
	q := quantize.MedianCutQuantizer{}
	return q.Quantize(make(color.Palette, 0, n), m)
}
