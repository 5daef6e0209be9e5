package noise

// Permutation holds a shuffled 0..255 table repeated twice so lookups of the
// form perm[x + perm[y]] never need wrapping, plus the same table reduced
// modulo 12 for the 2D/3D gradient sets.
type Permutation struct {
	Perm  [512]int
	Mod12 [512]int
}

// BuildPermutation shuffles the identity table with src using Fisher-Yates.
// The same source state always produces the same table.
func BuildPermutation(src RandomSource) *Permutation {
	p := &Permutation{}
	for i := 0; i < 256; i++ {
		p.Perm[i] = i
	}

	for i := 0; i < 256; i++ {
		r := i + src.IntRange(0, 255-i)
		p.Perm[i], p.Perm[r] = p.Perm[r], p.Perm[i]
		p.Perm[i+256] = p.Perm[i]

		p.Mod12[i] = p.Perm[i] % 12
		p.Mod12[i+256] = p.Mod12[i]
	}
	return p
}

func (p *Permutation) index2D12(offset, x, y int) int {
	return p.Mod12[(x&0xff)+p.Perm[(y&0xff)+offset]]
}
