// Package export writes generated worlds to a billy filesystem as a JSON cell
// layer, an SVG drawing or a PNG image.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strconv"

	"github.com/golang/geo/r2"
	"github.com/osuushi/worldmap/cells"
	"github.com/osuushi/worldmap/render"
	"github.com/osuushi/worldmap/voronoi"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
)

var Formats = []Format{FormatJSON, FormatSVG, FormatPNG}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown format %q", s)
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Writer stores artefacts in a filesystem.
type Writer struct {
	Filesystem billy.Filesystem
}

// Write creates name through encode. The content goes to a temporary file
// first and is renamed into place, so readers never see a partial file.
func (w *Writer) Write(name string, encode func(io.Writer) error) error {
	dir := path.Dir(name)
	if err := w.Filesystem.MkdirAll(dir, 0755); err != nil {
		return err
	}

	temp, err := w.Filesystem.TempFile(dir, "."+path.Base(name))
	if err != nil {
		return err
	}

	buffered := bufio.NewWriter(temp)
	err = encode(buffered)
	if err == nil {
		err = buffered.Flush()
	}
	err = multierr.Append(err, temp.Close())
	if err != nil {
		return multierr.Append(err, w.Filesystem.Remove(temp.Name()))
	}
	return w.Filesystem.Rename(temp.Name(), name)
}

func (w *Writer) JSON(name string, layer *cells.Layer) error {
	return errors.Wrapf(w.Write(name, func(out io.Writer) error {
		return EncodeJSON(out, layer)
	}), "export %s", name)
}

func (w *Writer) SVG(name string, layer *cells.Layer, bounds r2.Rect) error {
	return errors.Wrapf(w.Write(name, func(out io.Writer) error {
		return EncodeSVG(out, layer, bounds)
	}), "export %s", name)
}

func (w *Writer) PNG(name string, diagrams [][]*voronoi.Voronoi, style render.Style) error {
	return errors.Wrapf(w.Write(name, func(out io.Writer) error {
		return render.PNG(out, diagrams, style)
	}), "export %s", name)
}

// EncodeJSON writes the layer as {"path": [...]}.
func EncodeJSON(out io.Writer, layer *cells.Layer) error {
	enc := json.NewEncoder(out)
	return enc.Encode(layer)
}

// EncodeSVG writes one path element per cell, with the view box set to bounds.
func EncodeSVG(out io.Writer, layer *cells.Layer, bounds r2.Rect) error {
	if bounds.IsEmpty() {
		return errors.New("empty view box")
	}
	size := bounds.Size()
	ew := &errWriter{w: out}
	ew.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		num(size.X), num(size.Y), num(bounds.X.Lo), num(bounds.Y.Lo), num(size.X), num(size.Y))
	ew.printf(`<g class="cells" stroke="black" stroke-width="0.5">` + "\n")
	for i, d := range layer.Path {
		c := render.HueFraction(i, layer.Len())
		ew.printf(`<path class="cell" fill="#%02x%02x%02x" d="%s"/>`+"\n", c.R, c.G, c.B, d)
	}
	ew.printf("</g>\n</svg>\n")
	return ew.err
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// errWriter keeps the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
