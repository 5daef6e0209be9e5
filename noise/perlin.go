package noise

import "math"

// Interp selects how lattice gradients are blended.
type Interp int

const (
	Linear Interp = iota
	Hermite
	Quintic
)

var (
	grad2X = [12]float64{1, -1, 1, -1, 1, -1, 1, -1, 0, 0, 0, 0}
	grad2Y = [12]float64{1, 1, -1, -1, 0, 0, 0, 0, 1, -1, 1, -1}
)

// Perlin is fractal (fBm) 2D gradient noise over a Permutation.
type Perlin struct {
	Frequency  float64
	Octaves    int
	Lacunarity float64
	Gain       float64
	Interp     Interp

	perm *Permutation
}

// NewPerlin returns fBm Perlin noise with the FastNoise defaults: three
// octaves, lacunarity 2, gain 0.5, quintic interpolation.
func NewPerlin(src RandomSource, frequency float64) *Perlin {
	return &Perlin{
		Frequency:  frequency,
		Octaves:    3,
		Lacunarity: 2,
		Gain:       0.5,
		Interp:     Quintic,
		perm:       BuildPermutation(src),
	}
}

// Eval2 returns the noise value at (x, y), roughly within [-1, 1].
func (n *Perlin) Eval2(x, y float64) float64 {
	x *= n.Frequency
	y *= n.Frequency

	octaves := n.Octaves
	if octaves < 1 {
		octaves = 1
	}
	sum := n.single(n.perm.Perm[0], x, y)
	amp := 1.0
	for i := 1; i < octaves; i++ {
		x *= n.Lacunarity
		y *= n.Lacunarity
		amp *= n.Gain
		sum += n.single(n.perm.Perm[i], x, y) * amp
	}
	return sum * n.bounding(octaves)
}

func (n *Perlin) bounding(octaves int) float64 {
	amp := n.Gain
	total := 1.0
	for i := 1; i < octaves; i++ {
		total += amp
		amp *= n.Gain
	}
	return 1 / total
}

func (n *Perlin) single(offset int, x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := x0 + 1
	y1 := y0 + 1

	xd0 := x - float64(x0)
	yd0 := y - float64(y0)
	xd1 := xd0 - 1
	yd1 := yd0 - 1

	var xs, ys float64
	switch n.Interp {
	case Linear:
		xs, ys = xd0, yd0
	case Hermite:
		xs, ys = hermite(xd0), hermite(yd0)
	default:
		xs, ys = quintic(xd0), quintic(yd0)
	}

	xf0 := lerp(n.grad(offset, x0, y0, xd0, yd0), n.grad(offset, x1, y0, xd1, yd0), xs)
	xf1 := lerp(n.grad(offset, x0, y1, xd0, yd1), n.grad(offset, x1, y1, xd1, yd1), xs)
	return lerp(xf0, xf1, ys)
}

func (n *Perlin) grad(offset, x, y int, xd, yd float64) float64 {
	i := n.perm.index2D12(offset, x, y)
	return xd*grad2X[i] + yd*grad2Y[i]
}

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

func hermite(t float64) float64 { return t * t * (3 - 2*t) }

func quintic(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }
