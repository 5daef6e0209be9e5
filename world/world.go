// Package world runs the generation pipeline: lattice, triangulation and
// Voronoi extraction per tile, then cell paths.
package world

import (
	"log"

	"github.com/osuushi/worldmap/cells"
	"github.com/osuushi/worldmap/delaunay"
	"github.com/osuushi/worldmap/geom"
	"github.com/osuushi/worldmap/grid"
	"github.com/osuushi/worldmap/internal/stopwatch"
	"github.com/osuushi/worldmap/internal/workpool"
	"github.com/osuushi/worldmap/voronoi"
	"github.com/pkg/errors"
)

// Options control how a world is generated, not what is generated.
type Options struct {
	// Workers caps the goroutines used by each stage. Zero means
	// workpool.DefaultWorkers.
	Workers int
	// Logger receives progress and timings. Nil is silent.
	Logger *log.Logger
}

func (o Options) logf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

type World struct {
	Request Request
	Params  Params
	Grid    *grid.Grid
	// Diagrams holds one Voronoi diagram per tile, indexed [row][col]. In
	// single mesh mode it is 1×1.
	Diagrams [][]*voronoi.Voronoi
	Timings  *stopwatch.Stopwatch

	options Options
}

// Generate builds the world described by req. Any failing tile fails the whole
// world; no partial result is returned.
func Generate(req Request, opts Options) (*World, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		Request: req,
		Params:  req.Params(),
		Timings: stopwatch.New("WorldGenerator"),
		options: opts,
	}
	opts.logf("generating %vx%v world at density %d (spacing %v)", w.Params.WorldWidth, w.Params.WorldHeight, req.Density, w.Params.Spacing)

	w.Timings.Start("Generating graph")
	g, err := grid.New(w.Params.WorldWidth, w.Params.WorldHeight, req.Density, w.Params.Spacing, grid.Seeded(req.Seed, req.Density), opts.Workers)
	if err != nil {
		return nil, err
	}
	w.Grid = g
	opts.logf("graph: %d interior and %d boundary points", g.Interior.Count(), g.Boundary.Count())

	w.Timings.Start("Generating voronoi")
	if req.SingleMesh {
		w.Diagrams, err = singleMesh(g)
	} else {
		w.Diagrams, err = perTile(g, opts.Workers)
	}
	w.Timings.Stop()
	if err != nil {
		return nil, err
	}

	opts.logf("voronoi: %d cells", w.CellCount())
	opts.logf("%s", w.Timings.PrettyPrint())
	return w, nil
}

func perTile(g *grid.Grid, workers int) ([][]*voronoi.Voronoi, error) {
	diagrams := make([][]*voronoi.Voronoi, g.Density)
	for row := range diagrams {
		diagrams[row] = make([]*voronoi.Voronoi, g.Density)
	}
	err := workpool.Tiles(g.Density, g.Density, workers, func(row, col int) error {
		interior, boundary := g.Tile(row, col)
		all := make([]geom.Point, 0, len(interior)+len(boundary))
		all = append(all, interior...)
		all = append(all, boundary...)

		tri, err := delaunay.Triangulate(all)
		if err != nil {
			return errors.Wrapf(err, "tile (%d, %d)", row, col)
		}
		diagrams[row][col] = voronoi.New(tri, len(interior))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return diagrams, nil
}

// singleMesh triangulates every tile at once. Boundary points get cells too,
// so the seams between tiles connect.
func singleMesh(g *grid.Grid) ([][]*voronoi.Voronoi, error) {
	all := append(g.Interior.Flatten(), g.Boundary.Flatten()...)
	tri, err := delaunay.Triangulate(all)
	if err != nil {
		return nil, errors.Wrap(err, "single mesh")
	}
	return [][]*voronoi.Voronoi{{voronoi.New(tri, len(all))}}, nil
}

func (w *World) CellCount() int {
	n := 0
	for _, row := range w.Diagrams {
		for _, v := range row {
			n += v.Len()
		}
	}
	return n
}

// CellLayer renders the paths of all cells, tile by tile.
func (w *World) CellLayer() (*cells.Layer, error) {
	sw := stopwatch.New("Cell layer generator")
	sw.Start("Generate path")
	layer, err := cells.NewLayer(w.Diagrams, w.options.Workers)
	sw.Stop()
	if err != nil {
		return nil, err
	}
	w.options.logf("%s", sw.PrettyPrint())
	return layer, nil
}
