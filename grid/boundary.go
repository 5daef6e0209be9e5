package grid

import (
	"math"

	"github.com/osuushi/worldmap/geom"
)

// BoundaryVertices places points every spacing along the four edges of every
// tile, pushed outward by offset. A tile below or to the right of another one
// reuses that tile's bottom or right edge as its own top or left edge instead
// of generating it again, so shared edges are identical point for point.
//
// Within a tile the points are listed as: top edge (inherited or generated),
// bottom edge, left edge (inherited or generated), right edge.
func BoundaryVertices(width, height float64, density int, spacing, offset float64) (Tiles, error) {
	if err := validate(width, height, density, spacing); err != nil {
		return nil, err
	}

	tiles := newTiles(density)
	w := width/float64(density) + offset*2
	h := height/float64(density) + offset*2
	numberX := int(math.Ceil(w/spacing)) - 1
	numberY := int(math.Ceil(h/spacing)) - 1

	// Edges waiting to be inherited by the next row (per column) and by the
	// next column in the current row.
	bottoms := make([][]geom.Point, density)
	var right []geom.Point

	for row := 0; row < density; row++ {
		heightToAdd := h * float64(row)
		lastRow := row == density-1

		for col := 0; col < density; col++ {
			widthToAdd := w * float64(col)
			lastCol := col == density-1
			bottomY := h*float64(row+1) - offset
			rightX := w*float64(col+1) - offset

			var tile []geom.Point
			if row != 0 {
				tile = append(tile, bottoms[col]...)
				bottoms[col] = nil
			}

			for k := 0; k < numberX; k++ {
				x := edgeCoordinate(w, float64(k)+0.5, numberX, offset, widthToAdd)
				if row == 0 {
					tile = append(tile, geom.Point{X: x, Y: -offset})
				}
				bottom := geom.Point{X: x, Y: bottomY}
				tile = append(tile, bottom)
				if !lastRow {
					bottoms[col] = append(bottoms[col], bottom)
				}
			}

			if col != 0 {
				tile = append(tile, right...)
			}
			right = nil

			for k := 0; k < numberY; k++ {
				y := edgeCoordinate(h, float64(k)+0.5, numberY, offset, heightToAdd)
				if col == 0 {
					tile = append(tile, geom.Point{X: -offset, Y: y})
				}
				r := geom.Point{X: rightX, Y: y}
				tile = append(tile, r)
				if !lastCol {
					right = append(right, r)
				}
			}

			tiles[row][col] = tile
		}
	}
	return tiles, nil
}

// edgeCoordinate spreads count points evenly across an edge of the given
// length. Coordinates are rounded up to whole numbers.
func edgeCoordinate(length, i float64, count int, offset, shift float64) float64 {
	return math.Ceil(length*i/float64(count) - offset + shift)
}
