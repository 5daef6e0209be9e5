// Package mersenne implements the MT19937 Mersenne Twister.
//
// The generator is bit-exact with the reference C implementation by Matsumoto
// and Nishimura (init_genrand seeding), so a seeded run produces the same
// stream here as in any other faithful port. A Twister also satisfies
// math/rand.Source64, which lets it drive a *rand.Rand.
package mersenne

const (
	n = 624
	m = 397

	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

// DefaultSeed is the seed the reference implementation falls back to when the
// state was never initialized. The zero Twister uses it.
const DefaultSeed = 5489

// Twister is not safe for concurrent use.
type Twister struct {
	mt     [n]uint32
	mti    int
	seeded bool
}

// New returns a Twister seeded with seed. Only the low 32 bits of the seed are
// significant.
func New(seed int64) *Twister {
	t := &Twister{}
	t.Seed(seed)
	return t
}

// Seed resets the state using the linear congruential initializer from the
// 2002-01-09 reference version.
func (t *Twister) Seed(seed int64) {
	t.mt[0] = uint32(seed)
	for i := 1; i < n; i++ {
		prev := t.mt[i-1]
		t.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	t.mti = n
	t.seeded = true
}

// Uint32 returns the next tempered 32-bit value, regenerating the whole state
// block when it is exhausted.
func (t *Twister) Uint32() uint32 {
	if !t.seeded {
		t.Seed(DefaultSeed)
	}
	if t.mti >= n {
		t.twist()
	}

	y := t.mt[t.mti]
	t.mti++

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}

func (t *Twister) twist() {
	var y uint32
	k := 0
	for ; k < n-m; k++ {
		y = (t.mt[k] & upperMask) | (t.mt[k+1] & lowerMask)
		t.mt[k] = t.mt[k+m] ^ (y >> 1) ^ mag01(y)
	}
	for ; k < n-1; k++ {
		y = (t.mt[k] & upperMask) | (t.mt[k+1] & lowerMask)
		t.mt[k] = t.mt[k+(m-n)] ^ (y >> 1) ^ mag01(y)
	}
	y = (t.mt[n-1] & upperMask) | (t.mt[0] & lowerMask)
	t.mt[n-1] = t.mt[m-1] ^ (y >> 1) ^ mag01(y)
	t.mti = 0
}

func mag01(y uint32) uint32 {
	if y&1 == 0 {
		return 0
	}
	return matrixA
}

// IntRange returns a uniformly distributed integer in [lower, upper]. Draws
// that would bias the distribution are rejected.
func (t *Twister) IntRange(lower, upper int) int {
	if upper < lower {
		lower, upper = upper, lower
	}
	size := uint64(upper-lower) + 1
	if size > 1<<32 {
		panic("mersenne: range wider than 32 bits")
	}
	scaling := (uint64(1) << 32) / size
	past := size * scaling

	r := uint64(t.Uint32())
	for r >= past {
		r = uint64(t.Uint32())
	}
	return lower + int(r/scaling)
}

// Float64 returns a value in [0, 1) built from a single 32-bit draw.
func (t *Twister) Float64() float64 {
	return float64(t.Uint32()) / (1 << 32)
}

// Uint64 implements rand.Source64 by joining two consecutive draws, high word
// first.
func (t *Twister) Uint64() uint64 {
	hi := uint64(t.Uint32())
	return hi<<32 | uint64(t.Uint32())
}

// Int63 implements rand.Source.
func (t *Twister) Int63() int64 {
	return int64(t.Uint64() >> 1)
}
