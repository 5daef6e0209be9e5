// Package voronoi derives the Voronoi diagram dual to a Delaunay
// triangulation. Cells belong to points and their vertices are the
// circumcenters of the triangles around each point.
package voronoi

import (
	"math"

	"github.com/osuushi/worldmap/delaunay"
	"github.com/osuushi/worldmap/geom"
)

// MaxRing caps the number of triangles collected around one point. A longer
// ring means the mesh is broken, and the walk stops there.
const MaxRing = 20

type Cell struct {
	// Triangles around the point, in ring order. Their circumcenters are the
	// cell's vertices.
	Triangles []int
	// Neighbours are the adjacent cells, leaving out points at or above
	// NPoints.
	Neighbours []int
	// NearBorder is set when the cell touches a point that was left out of
	// Neighbours.
	NearBorder bool
}

type Vertex struct {
	Center geom.Point
	// Adjacent holds the triangle across each edge, or -1 on the hull.
	Adjacent [3]int
	Points   [3]int
}

// Voronoi holds one slot per point and per triangle. A nil slot has not been
// produced: points at or above NPoints never get a cell, and neither do
// points the triangulation skipped.
type Voronoi struct {
	NPoints  int
	Points   []geom.Point
	Cells    []*Cell
	Vertices []*Vertex
	// Order lists the points that have a cell, in the order they were found.
	Order []int
}

// New extracts the diagram from tri. Only the first nPoints points get cells;
// points after them only shape the cells of the others.
func New(tri *delaunay.Triangulation, nPoints int) *Voronoi {
	if nPoints > len(tri.Points) {
		nPoints = len(tri.Points)
	}
	if nPoints < 0 {
		nPoints = 0
	}
	v := &Voronoi{
		NPoints:  nPoints,
		Points:   tri.Points,
		Cells:    make([]*Cell, nPoints),
		Vertices: make([]*Vertex, tri.TriangleCount()),
		Order:    make([]int, 0, nPoints),
	}

	for e := range tri.Triangles {
		p := tri.Triangles[delaunay.NextHalfEdge(e)]
		if p < nPoints && v.Cells[p] == nil {
			v.Cells[p] = v.cell(tri, e)
			v.Order = append(v.Order, p)
		}

		t := delaunay.TriangleOfEdge(e)
		if v.Vertices[t] == nil {
			v.Vertices[t] = vertex(tri, t)
		}
	}
	return v
}

func (v *Voronoi) cell(tri *delaunay.Triangulation, start int) *Cell {
	edges := edgesAroundPoint(tri, start)
	c := &Cell{Triangles: make([]int, len(edges))}
	for i, e := range edges {
		c.Triangles[i] = delaunay.TriangleOfEdge(e)
		if q := tri.Triangles[e]; q < v.NPoints {
			c.Neighbours = append(c.Neighbours, q)
		}
	}
	c.NearBorder = len(edges) > len(c.Neighbours)
	return c
}

// edgesAroundPoint walks the half-edges ending at the point start ends at,
// stopping at the hull or after MaxRing steps.
func edgesAroundPoint(tri *delaunay.Triangulation, start int) []int {
	var result []int
	incoming := start
	for {
		result = append(result, incoming)
		incoming = tri.HalfEdges[delaunay.NextHalfEdge(incoming)]
		if incoming == -1 || incoming == start || len(result) >= MaxRing {
			return result
		}
	}
}

func vertex(tri *delaunay.Triangulation, t int) *Vertex {
	corners := tri.TrianglePoints(t)
	result := &Vertex{Points: corners}
	for i := 0; i < 3; i++ {
		result.Adjacent[i] = delaunay.TriangleOfEdge(tri.HalfEdges[3*t+i])
	}
	result.Center = circumcenter(tri.Points[corners[0]], tri.Points[corners[1]], tri.Points[corners[2]])
	return result
}

// circumcenter returns the triangle's circumcenter with both coordinates
// floored to whole numbers.
func circumcenter(a, b, c geom.Point) geom.Point {
	ad := a.X*a.X + a.Y*a.Y
	bd := b.X*b.X + b.Y*b.Y
	cd := c.X*c.X + c.Y*c.Y

	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	return geom.Point{
		X: math.Floor(1 / d * (ad*(b.Y-c.Y) + bd*(c.Y-a.Y) + cd*(a.Y-b.Y))),
		Y: math.Floor(1 / d * (ad*(c.X-b.X) + bd*(a.X-c.X) + cd*(b.X-a.X))),
	}
}

func (v *Voronoi) Len() int {
	return len(v.Order)
}

// Cell returns the cell of point p, or nil if it has none.
func (v *Voronoi) Cell(p int) *Cell {
	if p < 0 || p >= len(v.Cells) {
		return nil
	}
	return v.Cells[p]
}

// CellPolygon returns the vertices of p's cell in ring order.
func (v *Voronoi) CellPolygon(p int) []geom.Point {
	c := v.Cell(p)
	if c == nil {
		return nil
	}
	polygon := make([]geom.Point, len(c.Triangles))
	for i, t := range c.Triangles {
		polygon[i] = v.Vertices[t].Center
	}
	return polygon
}

// CellCentroid returns the area centroid of p's cell polygon.
func (v *Voronoi) CellCentroid(p int) geom.Point {
	return geom.Centroid(v.CellPolygon(p))
}
