package delaunay

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/osuushi/worldmap/geom"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
//
//  1. Validate passes: half-edges pair up, winding is uniform, and the
//     triangles cover the hull.
//  2. Every distinct input point is a corner of some triangle.
//  3. No point lies strictly inside any triangle's circumcircle.
//  4. The hull is convex.
func AssertValidTriangulation(t *testing.T, tri *Triangulation) {
	require.NoError(t, tri.Validate())

	used := make(geom.PointSet)
	for _, i := range tri.Triangles {
		used.Add(tri.Points[i])
	}
	for _, p := range tri.Points {
		require.True(t, used.Contains(p), "point %v is not in any triangle", p)
	}

	for i := 0; i < tri.TriangleCount(); i++ {
		c := tri.TrianglePoints(i)
		a, b, d := tri.Points[c[0]], tri.Points[c[1]], tri.Points[c[2]]
		center := circumcenter(a, b, d)
		radius := math.Sqrt(squaredDistance(a, center))
		for j, p := range tri.Points {
			if j == c[0] || j == c[1] || j == c[2] {
				continue
			}
			distance := math.Sqrt(squaredDistance(p, center))
			require.False(t, distance < radius*(1-1e-9)-1e-9,
				"point %d %v is inside the circumcircle of triangle %d %v", j, p, i, c)
		}
	}

	n := len(tri.Hull)
	for i := range tri.Hull {
		a := tri.Points[tri.Hull[i]]
		b := tri.Points[tri.Hull[(i+1)%n]]
		c := tri.Points[tri.Hull[(i+2)%n]]
		require.GreaterOrEqual(t, area(a, b, c), -1e-9, "hull turns the wrong way at %v", b)
	}
}
