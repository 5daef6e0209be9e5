package delaunay

import (
	"math/rand"
	"testing"

	"github.com/osuushi/worldmap/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoints(seed int64, n int, size float64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{
			X: geom.Round(r.Float64()*size, 2),
			Y: geom.Round(r.Float64()*size, 2),
		}
	}
	return points
}

func lattice(cols, rows int, spacing float64) []geom.Point {
	var points []geom.Point
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			points = append(points, geom.Point{X: spacing/2 + spacing*float64(x), Y: spacing/2 + spacing*float64(y)})
		}
	}
	return points
}

func TestTriangulate_Square(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	tri, err := Triangulate(points)
	require.NoError(t, err)
	AssertValidTriangulation(t, tri)

	require.Equal(t, 2, tri.TriangleCount())
	assert.Len(t, tri.Hull, 4)

	paired := 0
	for e, opposite := range tri.HalfEdges {
		if opposite >= 0 {
			paired++
			assert.Equal(t, e, tri.HalfEdges[opposite])
		}
	}
	assert.Equal(t, 2, paired, "two triangles share exactly one diagonal")

	// Both triangles are right isosceles: two unit legs and a diagonal.
	for i := 0; i < tri.TriangleCount(); i++ {
		corners := tri.TrianglePoints(i)
		var sides []float64
		for k := 0; k < 3; k++ {
			a, b := tri.Points[corners[k]], tri.Points[corners[(k+1)%3]]
			sides = append(sides, (a.X-b.X)*(a.X-b.X)+(a.Y-b.Y)*(a.Y-b.Y))
		}
		assert.ElementsMatch(t, []float64{1, 1, 2}, sides, "triangle %d", i)
	}

	// The shared edge is one of the two diagonals.
	for e, opposite := range tri.HalfEdges {
		if opposite < 0 {
			continue
		}
		ends := []int{tri.Triangles[e], tri.Triangles[NextHalfEdge(e)]}
		diagonal := []int{0, 2}
		if ends[0]%2 == 1 {
			diagonal = []int{1, 3}
		}
		assert.ElementsMatch(t, diagonal, ends, "half-edge %d", e)
		assert.ElementsMatch(t, ends, []int{tri.Triangles[opposite], tri.Triangles[NextHalfEdge(opposite)]})
	}
}

func TestTriangulate_SingleTriangle(t *testing.T) {
	tri, err := Triangulate([]geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}})
	require.NoError(t, err)
	AssertValidTriangulation(t, tri)
	assert.Len(t, tri.Triangles, 3)
	assert.Equal(t, []int{-1, -1, -1}, tri.HalfEdges)
}

func TestTriangulate_Degenerate(t *testing.T) {
	cases := map[string][]geom.Point{
		"empty":     nil,
		"two":       {{X: 0, Y: 0}, {X: 1, Y: 1}},
		"collinear": {{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}},
		"coincide":  {{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}},
	}
	for name, points := range cases {
		t.Run(name, func(t *testing.T) {
			tri, err := Triangulate(points)
			assert.Nil(t, tri)
			assert.True(t, errors.Is(err, ErrNoTriangulation), "got %v", err)
		})
	}
}

func TestTriangulate_SkipsDuplicates(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 5, Y: 5}, {X: 5, Y: 5}, {X: 0, Y: 0}}
	tri, err := Triangulate(points)
	require.NoError(t, err)
	AssertValidTriangulation(t, tri)
	assert.Equal(t, 4, tri.TriangleCount())
	assert.Len(t, tri.Hull, 4)
}

func TestTriangulate_Lattice(t *testing.T) {
	tri, err := Triangulate(lattice(12, 12, 10))
	require.NoError(t, err)
	AssertValidTriangulation(t, tri)
	assert.Equal(t, 2*11*11, tri.TriangleCount())
}

func TestTriangulate_Jittered(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	points := lattice(30, 30, 10)
	for i := range points {
		points[i].X = geom.Round(points[i].X+r.Float64()*9-4.5, 2)
		points[i].Y = geom.Round(points[i].Y+r.Float64()*9-4.5, 2)
	}
	tri, err := Triangulate(points)
	require.NoError(t, err)
	AssertValidTriangulation(t, tri)
}

func TestTriangulate_Random(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		points := randomPoints(seed, 3+int(seed)*7, 100)
		tri, err := Triangulate(points)
		if err != nil {
			// Tiny random sets can be collinear.
			require.True(t, errors.Is(err, ErrNoTriangulation), "seed %d: %v", seed, err)
			continue
		}
		AssertValidTriangulation(t, tri)
	}
}

func TestTriangulate_Deterministic(t *testing.T) {
	points := randomPoints(42, 500, 1000)
	a, err := Triangulate(points)
	require.NoError(t, err)
	b, err := Triangulate(points)
	require.NoError(t, err)
	assert.Equal(t, a.Triangles, b.Triangles)
	assert.Equal(t, a.HalfEdges, b.HalfEdges)
	assert.Equal(t, a.Hull, b.Hull)
}

func TestTriangulate_TrimmedArrays(t *testing.T) {
	points := randomPoints(7, 200, 50)
	tri, err := Triangulate(points)
	require.NoError(t, err)
	assert.Equal(t, len(tri.Triangles), len(tri.HalfEdges))
	assert.LessOrEqual(t, tri.TriangleCount(), 2*len(points)-5)
	// Every slot is a real corner; unused capacity would show up as repeated
	// zero triangles.
	for i := 0; i < tri.TriangleCount(); i++ {
		c := tri.TrianglePoints(i)
		assert.False(t, c[0] == c[1] || c[1] == c[2] || c[0] == c[2], "triangle %d %v", i, c)
	}
}

func TestHalfEdgeHelpers(t *testing.T) {
	assert.Equal(t, 1, NextHalfEdge(0))
	assert.Equal(t, 3, NextHalfEdge(5))
	assert.Equal(t, 5, PrevHalfEdge(3))
	assert.Equal(t, 4, PrevHalfEdge(5))
	assert.Equal(t, 2, TriangleOfEdge(7))
	assert.Equal(t, -1, TriangleOfEdge(-1))
}

func TestValidate_DetectsBrokenHalfEdges(t *testing.T) {
	tri, err := Triangulate([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)
	for e, opposite := range tri.HalfEdges {
		if opposite >= 0 {
			tri.HalfEdges[e] = -1
			break
		}
	}
	assert.Error(t, tri.Validate())
}

func TestHandleTriangulatePanicRecover(t *testing.T) {
	assert.NoError(t, HandleTriangulatePanicRecover(nil))

	err := func() (err error) {
		defer func() { err = HandleTriangulatePanicRecover(recover()) }()
		fatal(&InconsistentHullError{Point: 3, X: 1, Y: 2})
		return nil
	}()
	var hullErr *InconsistentHullError
	require.True(t, errors.As(err, &hullErr))
	assert.Equal(t, 3, hullErr.Point)

	assert.PanicsWithValue(t, "boom", func() {
		defer func() { _ = HandleTriangulatePanicRecover(recover()) }()
		panic("boom")
	})
}

func TestPseudoAngle(t *testing.T) {
	assert.Equal(t, 0.0, pseudoAngle(0, 0))
	assert.Equal(t, 0.5, pseudoAngle(1, 0))
	assert.Equal(t, 0.75, pseudoAngle(0, 1))
	assert.InDelta(t, 1.0, pseudoAngle(-1, 1e-12), 1e-9)
	assert.Equal(t, 0.25, pseudoAngle(0, -1))
}
