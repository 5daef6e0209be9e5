// Package render rasterises Voronoi cells with gg.
package render

import (
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/golang/geo/r2"
	"github.com/hsluv/hsluv-go"
	"github.com/osuushi/worldmap/geom"
	"github.com/osuushi/worldmap/noise"
	"github.com/osuushi/worldmap/voronoi"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type Style struct {
	// Scale is the number of pixels per world unit. Zero means 1.
	Scale float64
	// Padding is the margin around the cells, in pixels.
	Padding float64
	// Field shades each cell by its value at the cell's site. Without one,
	// cells cycle through evenly spaced hues.
	Field noise.Field
	// Outline strokes the cell borders.
	Outline bool
	// Caption is written in the top left corner when set.
	Caption string
}

// Draw renders every cell of every diagram onto a new context sized to fit
// them.
func Draw(diagrams [][]*voronoi.Voronoi, style Style) (*gg.Context, error) {
	scale := style.Scale
	if scale == 0 {
		scale = 1
	}
	bounds := Bounds(diagrams)
	if bounds.IsEmpty() {
		return nil, errors.New("render: no cells to draw")
	}
	size := bounds.Size()

	width := int(math.Ceil(scale*size.X + 2*style.Padding))
	height := int(math.Ceil(scale*size.Y + 2*style.Padding))
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Push()
	c.Translate(style.Padding, style.Padding)
	c.Scale(scale, scale)
	c.Translate(-bounds.X.Lo, -bounds.Y.Lo)

	total := 0
	for _, row := range diagrams {
		for _, v := range row {
			total += v.Len()
		}
	}

	index := 0
	for _, row := range diagrams {
		for _, v := range row {
			for _, p := range v.Order {
				polygon := v.CellPolygon(p)
				if len(polygon) < 3 {
					index++
					continue
				}
				c.MoveTo(polygon[0].X, polygon[0].Y)
				for _, q := range polygon[1:] {
					c.LineTo(q.X, q.Y)
				}
				c.ClosePath()

				if style.Field != nil {
					site := v.Points[p]
					c.SetColor(Shade(style.Field.Eval2(site.X, site.Y)))
				} else {
					c.SetColor(HueFraction(index, total))
				}
				if style.Outline {
					c.FillPreserve()
					c.SetRGBA(0, 0, 0, 0.5)
					c.SetLineWidth(1)
					c.Stroke()
				} else {
					c.Fill()
				}
				index++
			}
		}
	}
	c.Pop()

	if style.Caption != "" {
		face, err := captionFace()
		if err != nil {
			return nil, err
		}
		c.SetFontFace(face)
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(style.Caption, 8, 8, 0, 1)
	}
	return c, nil
}

// PNG renders the diagrams and encodes the result to w.
func PNG(w io.Writer, diagrams [][]*voronoi.Voronoi, style Style) error {
	c, err := Draw(diagrams, style)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "render: encode png")
}

// Bounds returns the smallest rectangle containing every cell vertex.
func Bounds(diagrams [][]*voronoi.Voronoi) r2.Rect {
	rect := r2.EmptyRect()
	for _, row := range diagrams {
		for _, v := range row {
			for _, p := range v.Order {
				rect = rect.Union(geom.Bounds(v.CellPolygon(p)))
			}
		}
	}
	return rect
}

// HueFraction spreads n colours evenly around the hue circle.
func HueFraction(i, n int) color.RGBA {
	if n <= 0 {
		n = 1
	}
	r, g, b := hsluv.HsluvToRGB(360*float64(i)/float64(n), 100, 50)
	return rgba(r, g, b)
}

// Shade maps a noise value in [-1, 1] to a map colour: blues below zero,
// greens through browns above it.
func Shade(value float64) color.RGBA {
	value = math.Max(-1, math.Min(1, value))
	var r, g, b float64
	if value < 0 {
		r, g, b = hsluv.HsluvToRGB(250, 80, 45+25*value)
	} else {
		r, g, b = hsluv.HsluvToRGB(130-90*value, 70, 50+25*value)
	}
	return rgba(r, g, b)
}

func rgba(r, g, b float64) color.RGBA {
	return color.RGBA{
		uint8(clamp01(r) * 0xff),
		uint8(clamp01(g) * 0xff),
		uint8(clamp01(b) * 0xff),
		0xff,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

var (
	captionOnce sync.Once
	captionFont *truetype.Font
	captionErr  error
)

func captionFace() (font.Face, error) {
	captionOnce.Do(func() {
		captionFont, captionErr = truetype.Parse(goregular.TTF)
		captionErr = errors.Wrap(captionErr, "render: parse caption font")
	})
	if captionErr != nil {
		return nil, captionErr
	}
	return truetype.NewFace(captionFont, &truetype.Options{Size: 14}), nil
}
