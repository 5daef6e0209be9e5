// Package noise builds the deterministic permutation tables that drive
// gradient noise, and evaluates 2D noise over them.
//
// Randomness is injected through RandomSource so the same code runs against
// the Mersenne Twister for reproducible worlds or against a trivial stub in
// tests.
package noise

import (
	"math/rand"
	"time"

	"github.com/osuushi/worldmap/mersenne"
)

// DefaultSeed matches the default seed of the FastNoise family.
const DefaultSeed = 1337

// A RandomSource yields uniform integers in the inclusive range [lower,
// upper].
type RandomSource interface {
	IntRange(lower, upper int) int
}

// SourceFunc adapts a plain function to RandomSource.
type SourceFunc func(lower, upper int) int

func (f SourceFunc) IntRange(lower, upper int) int {
	return f(lower, upper)
}

// Rand adapts a *rand.Rand to RandomSource.
type Rand struct {
	*rand.Rand
}

func (r Rand) IntRange(lower, upper int) int {
	if upper < lower {
		lower, upper = upper, lower
	}
	return lower + r.Intn(upper-lower+1)
}

// NewSource returns the source used for a noise seed: a Mersenne Twister for
// any non-zero seed, and a time-seeded math/rand source for zero.
func NewSource(seed int) RandomSource {
	if seed != 0 {
		return mersenne.New(int64(seed))
	}
	return Rand{rand.New(rand.NewSource(time.Now().UnixNano()))}
}

var _ RandomSource = (*mersenne.Twister)(nil)
