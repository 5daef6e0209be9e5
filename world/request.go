package world

import (
	"math"

	"github.com/osuushi/worldmap/geom"
	"github.com/osuushi/worldmap/grid"
	"github.com/pkg/errors"
)

const (
	DefaultWidth      = 1920.0
	DefaultHeight     = 937.0
	DefaultDensity    = 1
	DefaultMultiplier = 1
	DefaultSeed       = 1337

	// cellsPerScreen is the number of cells a DefaultWidth×DefaultHeight world
	// gets at density 1.
	cellsPerScreen = 10000
)

// Request describes the world to generate. It is a plain value; pipeline
// stages receive copies and never change it.
type Request struct {
	// Width and Height are the size of the map on screen.
	Width, Height float64
	// Density is the number of tiles per axis. The cell count grows with
	// Density raised to Multiplier.
	Density int
	// Multiplier scales the world relative to the screen.
	Multiplier int
	// Seed drives the jitter of the lattice.
	Seed int64
	// SingleMesh triangulates all tiles together instead of one mesh per
	// tile.
	SingleMesh bool
}

// WithDefaults fills zero fields with their defaults.
func (r Request) WithDefaults() Request {
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.Density == 0 {
		r.Density = DefaultDensity
	}
	if r.Multiplier == 0 {
		r.Multiplier = DefaultMultiplier
	}
	if r.Seed == 0 {
		r.Seed = DefaultSeed
	}
	return r
}

func (r Request) Validate() error {
	switch {
	case !(r.Width > 0) || math.IsInf(r.Width, 0):
		return errors.Wrapf(grid.ErrConfiguration, "width must be positive, got %v", r.Width)
	case !(r.Height > 0) || math.IsInf(r.Height, 0):
		return errors.Wrapf(grid.ErrConfiguration, "height must be positive, got %v", r.Height)
	case r.Density < 1:
		return errors.Wrapf(grid.ErrConfiguration, "density must be at least 1, got %d", r.Density)
	case r.Multiplier < 1:
		return errors.Wrapf(grid.ErrConfiguration, "multiplier must be at least 1, got %d", r.Multiplier)
	}
	return nil
}

// Params are the quantities derived from a Request.
type Params struct {
	WorldWidth, WorldHeight float64
	// CellsMultiplier is the screen area relative to the default screen.
	CellsMultiplier float64
	CellsDesired    float64
	Spacing         float64
	Offset          float64
}

func (r Request) Params() Params {
	worldWidth := r.Width * float64(r.Multiplier)
	worldHeight := r.Height * float64(r.Multiplier)
	cellsMultiplier := (r.Width / DefaultWidth) * (r.Height / DefaultHeight)
	cellsDesired := cellsPerScreen * math.Pow(float64(r.Density), float64(r.Multiplier)) * cellsMultiplier
	spacing := geom.Round(math.Sqrt(worldWidth*worldHeight/cellsDesired), 2)
	return Params{
		WorldWidth:      worldWidth,
		WorldHeight:     worldHeight,
		CellsMultiplier: cellsMultiplier,
		CellsDesired:    cellsDesired,
		Spacing:         spacing,
		Offset:          geom.Round(spacing, 0),
	}
}
