package cells

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/osuushi/worldmap/delaunay"
	"github.com/osuushi/worldmap/geom"
	"github.com/osuushi/worldmap/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	assert.Equal(t, "M", Path(nil))
	assert.Equal(t, "M1,2 ", Path([]geom.Point{{X: 1, Y: 2}}))
	assert.Equal(t, "M-3,4 5,-6 7.5,8 ", Path([]geom.Point{{X: -3, Y: 4}, {X: 5, Y: -6}, {X: 7.5, Y: 8}}))
}

func TestLayerJSON(t *testing.T) {
	layer := &Layer{Path: []string{"M1,2 ", "M3,4 "}}
	b, err := json.Marshal(layer)
	require.NoError(t, err)
	assert.JSONEq(t, `{"path": ["M1,2 ", "M3,4 "]}`, string(b))
	assert.Equal(t, "M1,2 M3,4 ", layer.D())
	assert.Equal(t, 2, layer.Len())
}

func diagram(t *testing.T, shift float64) *voronoi.Voronoi {
	var points []geom.Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			points = append(points, geom.Point{X: shift + 10*float64(x) + float64(y%2)*3, Y: 10 * float64(y)})
		}
	}
	for k := -1; k < 5; k++ {
		points = append(points,
			geom.Point{X: shift + 10*float64(k), Y: -10},
			geom.Point{X: shift + 10*float64(k), Y: 45},
		)
	}
	for k := 0; k < 4; k++ {
		points = append(points,
			geom.Point{X: shift - 10, Y: 10*float64(k) + 2},
			geom.Point{X: shift + 45, Y: 10*float64(k) + 2},
		)
	}
	tri, err := delaunay.Triangulate(points)
	require.NoError(t, err)
	return voronoi.New(tri, 16)
}

func TestTilePaths_FollowsCellOrder(t *testing.T) {
	v := diagram(t, 0)
	serial, err := TilePaths(v, 1)
	require.NoError(t, err)
	parallel, err := TilePaths(v, 8)
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)

	require.Len(t, serial, v.Len())
	for i, p := range v.Order {
		assert.Equal(t, Path(v.CellPolygon(p)), serial[i])
		assert.True(t, strings.HasPrefix(serial[i], "M"))
		assert.True(t, strings.HasSuffix(serial[i], " "))
		assert.Equal(t, len(v.Cell(p).Triangles), strings.Count(serial[i], ","))
	}
}

func TestNewLayer_TileMajorOrder(t *testing.T) {
	left := diagram(t, 0)
	right := diagram(t, 100)
	layer, err := NewLayer([][]*voronoi.Voronoi{{left, right}}, 4)
	require.NoError(t, err)

	leftPaths, err := TilePaths(left, 1)
	require.NoError(t, err)
	rightPaths, err := TilePaths(right, 1)
	require.NoError(t, err)
	assert.Equal(t, append(leftPaths, rightPaths...), layer.Path)
}
