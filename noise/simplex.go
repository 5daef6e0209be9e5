package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Field is anything that can be sampled in two dimensions.
type Field interface {
	Eval2(x, y float64) float64
}

// Simplex is OpenSimplex noise scaled by a frequency. Its seed is drawn from
// a RandomSource so it follows the same seeding policy as the permutation
// tables.
type Simplex struct {
	Frequency float64
	noise     opensimplex.Noise
}

func NewSimplex(src RandomSource, frequency float64) *Simplex {
	seed := int64(src.IntRange(0, math.MaxInt32))
	return &Simplex{
		Frequency: frequency,
		noise:     opensimplex.New(seed),
	}
}

// Eval2 returns a value in [-1, 1].
func (s *Simplex) Eval2(x, y float64) float64 {
	return s.noise.Eval2(x*s.Frequency, y*s.Frequency)
}

var (
	_ Field = (*Perlin)(nil)
	_ Field = (*Simplex)(nil)
)
