package worldmap

import (
	"testing"

	"github.com/osuushi/worldmap/grid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestGenerateCellLayer(t *testing.T) {
	layer, err := GenerateCellLayer(Request{Width: 192, Height: 94}, Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, layer.Path)

	again, err := GenerateCellLayer(Request{Width: 192, Height: 94}, Options{Workers: 1})
	require.NoError(t, err)
	assert.Equal(t, layer, again)
}

func TestGenerate_Defaults(t *testing.T) {
	w, err := Generate(Request{Width: 192, Height: 94}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, w.Request.Density)
	assert.Equal(t, int64(1337), w.Request.Seed)
}

func TestGenerate_Invalid(t *testing.T) {
	_, err := Generate(Request{Width: -1}, Options{})
	assert.True(t, errors.Is(err, grid.ErrConfiguration))
}
