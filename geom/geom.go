// Package geom holds the point type shared by the grid, triangulation and
// Voronoi stages.
package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

type Point struct {
	X float64
	Y float64
}

// PointKey identifies a point by the exact bit patterns of its coordinates.
// Unlike ==, it distinguishes 0 from -0 and treats identical NaNs as equal,
// which keeps hash-based deduplication deterministic.
type PointKey [2]uint64

func (p Point) Key() PointKey {
	return PointKey{math.Float64bits(p.X), math.Float64bits(p.Y)}
}

// Equal reports bit-exact equality.
func (p Point) Equal(o Point) bool {
	return p.Key() == o.Key()
}

func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func FromR2(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// PointSet is a set of points keyed by bit pattern.
type PointSet map[PointKey]struct{}

func (s PointSet) Add(p Point) {
	s[p.Key()] = struct{}{}
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p.Key()]
	return ok
}

// Dedupe returns points with bit-exact duplicates removed, keeping the first
// occurrence of each.
func Dedupe(points []Point) []Point {
	seen := make(PointSet, len(points))
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if seen.Contains(p) {
			continue
		}
		seen.Add(p)
		result = append(result, p)
	}
	return result
}

// Round rounds v to the given number of decimals, ties to even.
func Round(v float64, decimals int) float64 {
	m := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*m) / m
}

// Bounds returns the smallest rectangle containing every point.
func Bounds(points []Point) r2.Rect {
	rect := r2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(p.R2())
	}
	return rect
}

// Centroid returns the area centroid of a simple polygon given by its
// vertices in order. Degenerate (zero area) polygons yield NaN coordinates.
func Centroid(polygon []Point) Point {
	n := len(polygon)
	if n == 0 {
		return Point{math.NaN(), math.NaN()}
	}
	var x, y, k float64
	b := polygon[n-1].R2()
	for _, p := range polygon {
		a := b
		b = p.R2()
		c := a.Cross(b)
		k += c
		x += (a.X + b.X) * c
		y += (a.Y + b.Y) * c
	}
	k *= 3
	return Point{x / k, y / k}
}
