// Package delaunay implements incremental 2D Delaunay triangulation over a
// half-edge mesh.
//
// Triangle t is made of half-edges 3t, 3t+1 and 3t+2. Triangles[e] is the
// point half-edge e starts from, and HalfEdges[e] is the opposite half-edge in
// the neighbouring triangle, or -1 when e lies on the convex hull.
package delaunay

import (
	"math"

	"github.com/osuushi/worldmap/geom"
	"github.com/pkg/errors"
)

type Triangulation struct {
	Points    []geom.Point
	Triangles []int
	HalfEdges []int
	// Hull lists the point indices of the convex hull in the same winding as
	// the triangles.
	Hull []int
}

// Triangulate returns the Delaunay triangulation of points. Exact duplicates
// are ignored. The returned error wraps ErrNoTriangulation for degenerate
// input, or is an *InconsistentHullError if the hull could not be advanced.
func Triangulate(points []geom.Point) (result *Triangulation, err error) {
	defer func() {
		if recovered := HandleTriangulatePanicRecover(recover()); recovered != nil {
			result = nil
			err = recovered
		}
	}()

	tri := newTriangulator(points)
	if err := tri.triangulate(); err != nil {
		return nil, err
	}
	return &Triangulation{
		Points:    points,
		Triangles: tri.triangles,
		HalfEdges: tri.halfEdges,
		Hull:      tri.hullIndices(),
	}, nil
}

func (t *Triangulation) TriangleCount() int {
	return len(t.Triangles) / 3
}

// NextHalfEdge returns the next half-edge of e's triangle.
func NextHalfEdge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// PrevHalfEdge returns the previous half-edge of e's triangle.
func PrevHalfEdge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

// TriangleOfEdge returns the triangle e belongs to. For the -1 of a hull edge
// it returns -1.
func TriangleOfEdge(e int) int {
	if e < 0 {
		return -1
	}
	return e / 3
}

// TrianglePoints returns the point indices of triangle i.
func (t *Triangulation) TrianglePoints(i int) [3]int {
	return [3]int{t.Triangles[3*i], t.Triangles[3*i+1], t.Triangles[3*i+2]}
}

func (t *Triangulation) area() float64 {
	var result float64
	for i := 0; i < len(t.Triangles); i += 3 {
		result += area(t.Points[t.Triangles[i]], t.Points[t.Triangles[i+1]], t.Points[t.Triangles[i+2]])
	}
	return result / 2
}

func (t *Triangulation) hullArea() float64 {
	var result float64
	n := len(t.Hull)
	for i, a := range t.Hull {
		p := t.Points[a].R2()
		q := t.Points[t.Hull[(i+1)%n]].R2()
		result += p.Cross(q)
	}
	return math.Abs(result) / 2
}

// Validate runs sanity checks on the mesh: half-edges pair up, every triangle
// has the common winding, and the triangles exactly cover the hull. It returns
// nil if no problem was found.
func (t *Triangulation) Validate() error {
	if len(t.Triangles) != len(t.HalfEdges) || len(t.Triangles)%3 != 0 {
		return errors.Errorf("mismatched mesh arrays: %d triangle corners, %d half-edges", len(t.Triangles), len(t.HalfEdges))
	}
	for e, opposite := range t.HalfEdges {
		if opposite == -1 {
			continue
		}
		if opposite < 0 || opposite >= len(t.HalfEdges) || t.HalfEdges[opposite] != e {
			return errors.Errorf("invalid half-edge connection %d -> %d", e, opposite)
		}
		if t.Triangles[opposite] != t.Triangles[NextHalfEdge(e)] {
			return errors.Errorf("half-edges %d and %d do not share endpoints", e, opposite)
		}
	}
	for i := 0; i < t.TriangleCount(); i++ {
		c := t.TrianglePoints(i)
		if area(t.Points[c[0]], t.Points[c[1]], t.Points[c[2]]) < 0 {
			return errors.Errorf("triangle %d %v is wound the wrong way", i, c)
		}
	}

	hull := t.hullArea()
	covered := math.Abs(t.area())
	if math.Abs(hull-covered) > 1e-9*math.Max(1, hull) {
		return errors.Errorf("triangles cover %v but the hull encloses %v", covered, hull)
	}
	return nil
}
