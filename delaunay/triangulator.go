package delaunay

import (
	"math"
	"sort"

	"github.com/osuushi/worldmap/geom"
	"github.com/pkg/errors"
)

type triangulator struct {
	points    []geom.Point
	distances []float64
	ids       []int
	center    geom.Point

	triangles    []int
	halfEdges    []int
	trianglesLen int

	hull     *hull
	hullHead int
	hash     []int
	stack    []int
}

func newTriangulator(points []geom.Point) *triangulator {
	return &triangulator{points: points}
}

// Sorting a triangulator orders ids by distance to the seed circumcenter,
// then by x and y so that exact duplicates end up next to each other.

func (tri *triangulator) Len() int {
	return len(tri.ids)
}

func (tri *triangulator) Swap(i, j int) {
	tri.ids[i], tri.ids[j] = tri.ids[j], tri.ids[i]
}

func (tri *triangulator) Less(i, j int) bool {
	a, b := tri.ids[i], tri.ids[j]
	if d1, d2 := tri.distances[a], tri.distances[b]; d1 != d2 {
		return d1 < d2
	}
	p1, p2 := tri.points[a], tri.points[b]
	if p1.X != p2.X {
		return p1.X < p2.X
	}
	return p1.Y < p2.Y
}

// seed picks the first triangle: the point nearest the middle of the bounding
// box, its nearest neighbour, and the point that makes the smallest
// circumcircle with those two. The result is wound like every other triangle.
func (tri *triangulator) seed() (i0, i1, i2 int, err error) {
	points := tri.points
	m := geom.FromR2(geom.Bounds(points).Center())

	i0, i1, i2 = -1, -1, -1
	minDist := math.Inf(1)
	for i, p := range points {
		if d := squaredDistance(p, m); d < minDist {
			i0 = i
			minDist = d
		}
	}

	minDist = math.Inf(1)
	for i, p := range points {
		if i == i0 {
			continue
		}
		if d := squaredDistance(p, points[i0]); d > 0 && d < minDist {
			i1 = i
			minDist = d
		}
	}
	if i1 < 0 {
		return 0, 0, 0, errors.Wrap(ErrNoTriangulation, "all points coincide")
	}

	minRadius := math.Inf(1)
	for i, p := range points {
		if i == i0 || i == i1 {
			continue
		}
		if r := circumradius(points[i0], points[i1], p); r < minRadius {
			i2 = i
			minRadius = r
		}
	}
	if math.IsInf(minRadius, 1) {
		return 0, 0, 0, errors.Wrap(ErrNoTriangulation, "points are collinear")
	}

	if area(points[i0], points[i1], points[i2]) < 0 {
		i1, i2 = i2, i1
	}
	return i0, i1, i2, nil
}

func (tri *triangulator) triangulate() error {
	points := tri.points
	n := len(points)
	if n < 3 {
		return errors.Wrapf(ErrNoTriangulation, "need at least 3 points, got %d", n)
	}

	i0, i1, i2, err := tri.seed()
	if err != nil {
		return err
	}
	p0, p1, p2 := points[i0], points[i1], points[i2]
	tri.center = circumcenter(p0, p1, p2)

	tri.ids = make([]int, n)
	tri.distances = make([]float64, n)
	for i, p := range points {
		tri.ids[i] = i
		tri.distances[i] = squaredDistance(p, tri.center)
	}
	sort.Sort(tri)

	tri.hash = make([]int, int(math.Ceil(math.Sqrt(float64(n)))))
	for i := range tri.hash {
		tri.hash[i] = -1
	}

	tri.hull = newHull(n)
	e := tri.hull.insert(i0, p0, -1)
	tri.hull.node(e).t = 0
	tri.hashEdge(e)
	e = tri.hull.insert(i1, p1, e)
	tri.hull.node(e).t = 1
	tri.hashEdge(e)
	e = tri.hull.insert(i2, p2, e)
	tri.hull.node(e).t = 2
	tri.hashEdge(e)
	tri.hullHead = e

	maxTriangles := 2*n - 5
	if maxTriangles < 1 {
		maxTriangles = 1
	}
	tri.triangles = make([]int, maxTriangles*3)
	tri.halfEdges = make([]int, maxTriangles*3)
	tri.addTriangle(i0, i1, i2, -1, -1, -1)

	previous := geom.Point{X: math.NaN(), Y: math.NaN()}
	for _, i := range tri.ids {
		p := points[i]

		if p == previous {
			continue
		}
		previous = p

		if p == p0 || p == p1 || p == p2 {
			continue
		}

		tri.insert(i, p)
	}

	tri.triangles = tri.triangles[:tri.trianglesLen]
	tri.halfEdges = tri.halfEdges[:tri.trianglesLen]
	return nil
}

// insert adds point i outside the current hull, fanning triangles over every
// hull edge visible from it.
func (tri *triangulator) insert(i int, p geom.Point) {
	h := tri.hull

	start := -1
	key := tri.hashKey(p)
	for j := 0; j < len(tri.hash); j++ {
		start = tri.hash[key]
		if start >= 0 && !h.node(start).removed {
			break
		}
		start = -1
		key = (key + 1) % len(tri.hash)
	}
	if start < 0 {
		fatal(&InconsistentHullError{Point: i, X: p.X, Y: p.Y})
	}
	start = h.node(start).prev

	e := start
	for area(p, h.node(e).point, h.node(h.node(e).next).point) >= 0 {
		e = h.node(e).next
		if e == start {
			fatal(&InconsistentHullError{Point: i, X: p.X, Y: p.Y})
		}
	}
	walkBack := e == start

	// First triangle from the point
	en := h.node(e)
	t := tri.addTriangle(en.i, i, h.node(en.next).i, -1, -1, en.t)
	en.t = t
	e = h.insert(i, p, e)

	h.node(e).t = tri.legalize(t + 2)

	// Walk forward through the hull
	q := h.node(e).next
	for {
		qn := h.node(q)
		next := h.node(qn.next)
		if area(p, qn.point, next.point) >= 0 {
			break
		}
		t = tri.addTriangle(qn.i, i, next.i, h.node(qn.prev).t, -1, qn.t)
		h.node(qn.prev).t = tri.legalize(t + 2)
		tri.hullHead = h.remove(q)
		q = qn.next
	}

	if walkBack {
		// Walk backward from the other side
		q = h.node(e).prev
		for {
			qn := h.node(q)
			prev := h.node(qn.prev)
			if area(p, prev.point, qn.point) >= 0 {
				break
			}
			t = tri.addTriangle(prev.i, i, qn.i, -1, qn.t, prev.t)
			tri.legalize(t + 2)
			prev.t = t
			tri.hullHead = h.remove(q)
			q = qn.prev
		}
	}

	tri.hashEdge(e)
	tri.hashEdge(h.node(e).prev)
}

func (tri *triangulator) hashKey(p geom.Point) int {
	size := len(tri.hash)
	key := int(math.Floor(pseudoAngle(p.X-tri.center.X, p.Y-tri.center.Y) * float64(size)))
	return key % size
}

func (tri *triangulator) hashEdge(e int) {
	tri.hash[tri.hashKey(tri.hull.node(e).point)] = e
}

// addTriangle appends a triangle given its point indices and the half-edges
// opposite each of its edges, and returns its first half-edge.
func (tri *triangulator) addTriangle(i0, i1, i2, a, b, c int) int {
	t := tri.trianglesLen
	tri.triangles[t] = i0
	tri.triangles[t+1] = i1
	tri.triangles[t+2] = i2
	tri.link(t, a)
	tri.link(t+1, b)
	tri.link(t+2, c)
	tri.trianglesLen += 3
	return t
}

func (tri *triangulator) link(a, b int) {
	tri.halfEdges[a] = b
	if b >= 0 {
		tri.halfEdges[b] = a
	}
}

// legalize flips edges until the triangles around a are locally Delaunay.
// Edges still to check are kept on an explicit stack. It returns the last
// half-edge that ends up facing the new point's hull edge.
//
//	      pl                    pl
//	     /||\                  /  \
//	  al/ || \bl            al/    \a
//	   /  ||  \              /      \
//	  /  a||b  \    flip    /___ar___\
//	p0\   ||   /p1   =>   p0\---bl---/p1
//	   \  ||  /              \      /
//	  ar\ || /br             b\    /br
//	     \||/                  \  /
//	      pr                    pr
func (tri *triangulator) legalize(a int) int {
	tri.stack = tri.stack[:0]
	var ar int

	for {
		b := tri.halfEdges[a]
		a0 := a - a%3
		ar = a0 + (a+2)%3

		if b < 0 {
			if len(tri.stack) == 0 {
				break
			}
			a = tri.pop()
			continue
		}

		b0 := b - b%3
		al := a0 + (a+1)%3
		bl := b0 + (b+2)%3

		p0 := tri.triangles[ar]
		pr := tri.triangles[a]
		pl := tri.triangles[al]
		p1 := tri.triangles[bl]

		if !inCircle(tri.points[p0], tri.points[pr], tri.points[pl], tri.points[p1]) {
			if len(tri.stack) == 0 {
				break
			}
			a = tri.pop()
			continue
		}

		tri.triangles[a] = p1
		tri.triangles[b] = p0

		hbl := tri.halfEdges[bl]
		if hbl < 0 {
			// The flipped edge was on the hull; point its hull node at the
			// half-edge that now holds it.
			tri.retargetHull(bl, a)
		}
		tri.link(a, hbl)
		tri.link(b, tri.halfEdges[ar])
		tri.link(ar, bl)

		tri.stack = append(tri.stack, b0+(b+1)%3)
	}
	return ar
}

func (tri *triangulator) pop() int {
	last := len(tri.stack) - 1
	a := tri.stack[last]
	tri.stack = tri.stack[:last]
	return a
}

func (tri *triangulator) retargetHull(from, to int) {
	h := tri.hull
	e := tri.hullHead
	for {
		if n := h.node(e); n.t == from {
			n.t = to
			return
		}
		e = h.node(e).next
		if e == tri.hullHead {
			return
		}
	}
}

// hullIndices lists the point indices of the final hull, following the
// winding of the triangles.
func (tri *triangulator) hullIndices() []int {
	h := tri.hull
	var result []int
	e := tri.hullHead
	for {
		result = append(result, h.node(e).i)
		e = h.node(e).next
		if e == tri.hullHead {
			break
		}
	}
	return result
}
