// A procedural world map generator for Go.
//
// This package lays out a jittered lattice of points over a world split into
// tiles, triangulates each tile, and turns the dual Voronoi diagram into one
// SVG path per cell.
package worldmap

import (
	"github.com/osuushi/worldmap/cells"
	"github.com/osuushi/worldmap/delaunay"
	"github.com/osuushi/worldmap/world"
)

type Request = world.Request
type Options = world.Options
type World = world.World
type CellLayer = cells.Layer

// Generate builds the world described by req, filling its zero fields with
// defaults first.
func Generate(req Request, opts Options) (result *World, err error) {
	defer func() {
		recoveredErr := delaunay.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return world.Generate(req.WithDefaults(), opts)
}

// GenerateCellLayer builds a world and renders its cells.
func GenerateCellLayer(req Request, opts Options) (*CellLayer, error) {
	w, err := Generate(req, opts)
	if err != nil {
		return nil, err
	}
	return w.CellLayer()
}
