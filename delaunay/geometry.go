package delaunay

import (
	"math"

	"github.com/osuushi/worldmap/geom"
)

// area is twice the signed area of abc. It is positive for the winding every
// triangle of a Triangulation has.
func area(a, b, c geom.Point) float64 {
	return (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
}

// inCircle reports whether p lies strictly inside the circumcircle of abc.
func inCircle(a, b, c, p geom.Point) bool {
	dx := a.X - p.X
	dy := a.Y - p.Y
	ex := b.X - p.X
	ey := b.Y - p.Y
	fx := c.X - p.X
	fy := c.Y - p.Y

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	return dx*(ey*cp-bp*fy)-dy*(ex*cp-bp*fx)+ap*(ex*fy-ey*fx) < 0
}

// circumradius returns the squared circumradius of abc, or +Inf when the
// triangle is degenerate.
func circumradius(a, b, c geom.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ex := c.X - a.X
	ey := c.Y - a.Y

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	if bl == 0 || cl == 0 {
		return math.Inf(1)
	}
	d := dx*ey - dy*ex
	if d == 0 {
		return math.Inf(1)
	}

	x := (ey*bl - dy*cl) * 0.5 / d
	y := (dx*cl - ex*bl) * 0.5 / d
	return x*x + y*y
}

func circumcenter(a, b, c geom.Point) geom.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ex := c.X - a.X
	ey := c.Y - a.Y

	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := dx*ey - dy*ex

	x := (ey*bl - dy*cl) * 0.5 / d
	y := (dx*cl - ex*bl) * 0.5 / d
	return geom.Point{X: a.X + x, Y: a.Y + y}
}

func squaredDistance(a, b geom.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// pseudoAngle increases monotonically with the angle of (dx, dy) and lies in
// [0, 1]. The origin itself maps to 0.
func pseudoAngle(dx, dy float64) float64 {
	sum := math.Abs(dx) + math.Abs(dy)
	if sum == 0 {
		return 0
	}
	p := dx / sum
	if dy > 0 {
		return (3 - p) / 4
	}
	return (1 + p) / 4
}
