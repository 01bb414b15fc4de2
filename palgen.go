/*
Package palgen converts raw palette files into source code array literals.

A palette file is a sequence of bytes where every three bytes are the red,
green and blue components of one color. The generated text wraps each group
of three bytes in braces, one group per line, and wraps the whole sequence in
an outer pair of braces so it can be pasted into a C or C++ initializer:

	{
	    {0x7c, 0x7c, 0x7c},
	    {0x00, 0x00, 0xfc},
	}

No attempt is made to validate the input. If the byte count is not a multiple
of three the final group is left unterminated, matching the output of the
tool this package replaces.
*/
package palgen

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nestruts/palgen/pal"
)

const groupSize = 3

const (
	listStart  = "{\n"
	listEnd    = "}\n"
	groupStart = "    {"
	groupEnd   = "},\n"
	separator  = ", "
)

// Generate reads every byte from r and writes the formatted array literal to
// w. It returns the number of bytes read. On a read error any text already
// produced is still written to w.
func Generate(w io.Writer, r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	bw.WriteString(listStart)

	var n int
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			bw.Flush()
			return n, err
		}
		n++

		if n%groupSize == 1 {
			bw.WriteString(groupStart)
		}
		fmt.Fprintf(bw, "0x%02x", b)
		if n%groupSize == 0 {
			bw.WriteString(groupEnd)
		} else {
			bw.WriteString(separator)
		}
	}

	bw.WriteString(listEnd)

	return n, bw.Flush()
}

// Generator formats palette files, reporting progress to its logger.
type Generator struct {
	logger *log.Logger
}

// New returns a Generator that logs to logger.
func New(logger *log.Logger) *Generator {
	return &Generator{
		logger: logger,
	}
}

// GenerateFile formats the palette file named by file and writes the result
// to w.
func (g *Generator) GenerateFile(w io.Writer, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	var raw bytes.Buffer
	n, err := Generate(w, io.TeeReader(f, &raw))
	if err != nil {
		return err
	}

	p, err := pal.Decode(&raw)
	switch err {
	case nil:
		g.logger.Printf("Read %d bytes from \"%s\", %d colors\n", n, file, len(p))
	case pal.ErrPartialColor:
		g.logger.Printf("Read %d bytes from \"%s\", %d colors\n", n, file, n/groupSize)
		g.logger.Printf("Warning: \"%s\" ends with %d trailing byte(s), last group is unterminated\n", file, n%groupSize)
	default:
		return err
	}

	return nil
}
