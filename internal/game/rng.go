package game

// Rng is a small xoshiro256++ generator owned by the battle state. It is a
// plain value type so cloning a battle clones the generator mid-sequence,
// which keeps replayed and simulated games byte-for-byte deterministic.
// math/rand sources cannot be copied, which is why this is hand-rolled.
type Rng struct {
	s [4]uint64
}

// NewRng returns a generator seeded via splitmix64.
func NewRng(seed uint64) Rng {
	var r Rng
	for i := range r.s {
		seed += 0x9e3779b97f4a7c15
		z := seed
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		r.s[i] = z ^ (z >> 31)
	}
	return r
}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// Next returns the next value in the sequence.
func (r *Rng) Next() uint64 {
	result := rotl(r.s[0]+r.s[3], 23) + r.s[0]
	t := r.s[1] << 17
	r.s[2] ^= r.s[0]
	r.s[3] ^= r.s[1]
	r.s[1] ^= r.s[2]
	r.s[0] ^= r.s[3]
	r.s[2] ^= t
	r.s[3] = rotl(r.s[3], 45)
	return result
}

// IntN returns a value in [0, n). Panics when n <= 0.
func (r *Rng) IntN(n int) int {
	if n <= 0 {
		panic("IntN: n must be positive")
	}
	return int(r.Next() % uint64(n))
}

// Shuffle randomizes the order of n elements using the provided swap.
func (r *Rng) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		swap(i, j)
	}
}
