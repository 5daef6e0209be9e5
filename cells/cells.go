// Package cells turns Voronoi cells into SVG path data.
package cells

import (
	"strconv"
	"strings"

	"github.com/osuushi/worldmap/geom"
	"github.com/osuushi/worldmap/internal/workpool"
	"github.com/osuushi/worldmap/voronoi"
)

// Layer is the ordered list of cell paths of a world, one per cell.
type Layer struct {
	Path []string `json:"path"`
}

// D joins every path into a single SVG path data attribute.
func (l *Layer) D() string {
	return strings.Join(l.Path, "")
}

func (l *Layer) Len() int {
	return len(l.Path)
}

// Path renders a polygon as a move to its first vertex followed by the
// remaining vertices. Every coordinate pair is followed by a space and the
// path is left open; the fill closes it.
func Path(polygon []geom.Point) string {
	var sb strings.Builder
	sb.WriteString("M")
	for _, p := range polygon {
		sb.WriteString(formatCoordinate(p.X))
		sb.WriteByte(',')
		sb.WriteString(formatCoordinate(p.Y))
		sb.WriteByte(' ')
	}
	return sb.String()
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TilePaths renders every cell of one diagram, in the order the cells were
// found. Cells are rendered on at most workers goroutines.
func TilePaths(v *voronoi.Voronoi, workers int) ([]string, error) {
	paths := make([]string, len(v.Order))
	err := workpool.Range(len(v.Order), workers, func(i int) error {
		paths[i] = Path(v.CellPolygon(v.Order[i]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// NewLayer renders the cells of every tile, row by row and column by column.
func NewLayer(diagrams [][]*voronoi.Voronoi, workers int) (*Layer, error) {
	layer := &Layer{}
	for _, row := range diagrams {
		for _, v := range row {
			paths, err := TilePaths(v, workers)
			if err != nil {
				return nil, err
			}
			layer.Path = append(layer.Path, paths...)
		}
	}
	return layer, nil
}
