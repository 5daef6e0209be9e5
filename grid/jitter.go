package grid

import (
	"github.com/osuushi/worldmap/geom"
	"github.com/osuushi/worldmap/internal/workpool"
	"github.com/osuushi/worldmap/mersenne"
)

// A JitterFunc returns a perturbation in [-j, j].
type JitterFunc func(j float64) float64

// A JitterSource hands every tile its own JitterFunc. Tiles are generated
// concurrently, so a source that returns the same function for several tiles
// must return one that is safe for concurrent use.
type JitterSource func(row, col int) JitterFunc

// NoJitter produces a perfectly regular lattice.
func NoJitter(row, col int) JitterFunc {
	return func(float64) float64 { return 0 }
}

// Uniform maps a [0, 1) generator onto [-j, j].
func Uniform(next func() float64) JitterFunc {
	return func(j float64) float64 {
		return next()*2*j - j
	}
}

// Seeded gives each tile its own Mersenne Twister, so the lattice is
// reproducible whatever the number of workers. Tile seeds are drawn in
// row-major order from a twister seeded with seed.
func Seeded(seed int64, density int) JitterSource {
	root := mersenne.New(seed)
	if density < 0 {
		density = 0
	}
	seeds := make([]int64, density*density)
	for i := range seeds {
		seeds[i] = root.Int63()
	}
	return func(row, col int) JitterFunc {
		return Uniform(mersenne.New(seeds[row*density+col]).Float64)
	}
}

// Shared hands the same function to every tile.
func Shared(fn JitterFunc) JitterSource {
	return func(row, col int) JitterFunc { return fn }
}

// JitteredGraph fills every tile with a lattice at spacing intervals starting
// half a spacing in from the tile corner, and perturbs each coordinate by up
// to 90% of half the spacing. Coordinates are rounded to two decimals.
//
// Tiles are generated on at most workers goroutines; each writes only its own
// slot.
func JitteredGraph(width, height float64, density int, spacing, offset float64, jitter JitterSource, workers int) (Tiles, error) {
	if err := validate(width, height, density, spacing); err != nil {
		return nil, err
	}
	if jitter == nil {
		jitter = NoJitter
	}

	tiles := newTiles(density)
	tileWidth := width / float64(density)
	tileHeight := height / float64(density)

	err := workpool.Tiles(density, density, workers, func(row, col int) error {
		shiftX := tileWidth*float64(col) + offset*2*float64(col)
		shiftY := tileHeight*float64(row) + offset*2*float64(row)
		tiles[row][col] = jitteredTile(tileWidth, tileHeight, spacing, shiftX, shiftY, jitter(row, col))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tiles, nil
}

func jitteredTile(width, height, spacing, shiftX, shiftY float64, jitter JitterFunc) []geom.Point {
	radius := spacing / 2
	amount := radius * 0.9

	var points []geom.Point
	// Every tile gets at least one row and one column, even when it is
	// narrower than the spacing.
	for y := radius; ; {
		for x := radius; ; {
			jx := x + jitter(amount) + shiftX
			jy := y + jitter(amount) + shiftY
			points = append(points, geom.Point{X: geom.Round(jx, 2), Y: geom.Round(jy, 2)})
			x += spacing
			if x >= width {
				break
			}
		}
		y += spacing
		if y >= height {
			break
		}
	}
	return points
}
