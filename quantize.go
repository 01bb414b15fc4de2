package palgen

import (
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/nestruts/palgen/pal"
)

var errNoColors = errors.New("palgen: at least one color is required")

// Quantize derives a palette of at most colors entries from the image named
// by file and writes it to w as a raw palette file.
func (g *Generator) Quantize(w io.Writer, file string, colors int) error {
	if colors < 1 {
		return errNoColors
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, format, err := image.Decode(f)
	if err != nil {
		return err
	}

	p := pal.FromImage(m, colors)
	g.logger.Printf("Quantized %s image \"%s\" to %d colors\n", format, file, len(p))

	return pal.Encode(w, p)
}
