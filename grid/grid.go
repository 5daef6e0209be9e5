// Package grid lays out the point sets that get triangulated: a jittered
// lattice of interior points per tile, and a ring of boundary points around
// every tile whose shared edges coincide exactly with those of its
// neighbours.
//
// The world is split into density×density tiles. Tile (row, col) owns the
// rectangle starting at (w·col, h·row) where w and h are the tile size plus
// twice the boundary offset, so neighbouring tiles are separated by a gutter
// that holds their shared boundary edge.
package grid

import (
	"math"

	"github.com/osuushi/worldmap/geom"
	"github.com/pkg/errors"
)

// ErrConfiguration is wrapped by every parameter validation failure.
var ErrConfiguration = errors.New("invalid grid configuration")

// Tiles is a density×density array of point lists, indexed [row][col].
type Tiles [][][]geom.Point

func newTiles(density int) Tiles {
	tiles := make(Tiles, density)
	for row := range tiles {
		tiles[row] = make([][]geom.Point, density)
	}
	return tiles
}

// Count returns the total number of points across all tiles.
func (t Tiles) Count() int {
	n := 0
	for _, row := range t {
		for _, tile := range row {
			n += len(tile)
		}
	}
	return n
}

// Flatten concatenates all tiles row-major.
func (t Tiles) Flatten() []geom.Point {
	result := make([]geom.Point, 0, t.Count())
	for _, row := range t {
		for _, tile := range row {
			result = append(result, tile...)
		}
	}
	return result
}

type Grid struct {
	Width, Height float64
	Density       int
	Spacing       float64
	// Offset is how far the boundary ring sits outside each tile.
	Offset float64
	// CellsX and CellsY estimate the lattice size of the whole world.
	CellsX, CellsY int

	Interior Tiles
	Boundary Tiles
}

// New builds both point sets for a world of the given size. The boundary
// offset is the spacing rounded to a whole number.
func New(width, height float64, density int, spacing float64, jitter JitterSource, workers int) (*Grid, error) {
	offset := geom.Round(spacing, 0)
	boundary, err := BoundaryVertices(width, height, density, spacing, offset)
	if err != nil {
		return nil, err
	}
	interior, err := JitteredGraph(width, height, density, spacing, offset, jitter, workers)
	if err != nil {
		return nil, err
	}
	return &Grid{
		Width:    width,
		Height:   height,
		Density:  density,
		Spacing:  spacing,
		Offset:   offset,
		CellsX:   int(math.Floor((width + 0.5*spacing) / spacing)),
		CellsY:   int(math.Floor((height + 0.5*spacing) / spacing)),
		Interior: interior,
		Boundary: boundary,
	}, nil
}

// Tile returns the interior and boundary points of one tile.
func (g *Grid) Tile(row, col int) (interior, boundary []geom.Point) {
	return g.Interior[row][col], g.Boundary[row][col]
}

func validate(width, height float64, density int, spacing float64) error {
	switch {
	case spacing <= 0 || math.IsNaN(spacing):
		return errors.Wrapf(ErrConfiguration, "spacing must be positive, got %v; consider enlarging width or height", spacing)
	case width <= 0 || math.IsNaN(width):
		return errors.Wrapf(ErrConfiguration, "width must be positive, got %v", width)
	case height <= 0 || math.IsNaN(height):
		return errors.Wrapf(ErrConfiguration, "height must be positive, got %v", height)
	case density <= 0:
		return errors.Wrapf(ErrConfiguration, "density must be positive, got %d", density)
	}
	return nil
}
