// Package rng implements the deterministic pick/pick-weighted primitive
// the rest of the engine builds on. A fixed seed must reproduce an
// identical stream across runs, so this intentionally does not use
// math/rand: a self-contained xorshift avoids depending on stdlib's
// algorithm staying fixed across Go versions.
package rng

// RNG is a seeded xorshift96 generator, period 2^96-1.
type RNG struct {
	x, y, z uint64
}

// New returns an RNG seeded deterministically from seed.
func New(seed int) *RNG {
	r := &RNG{
		x: 123456789,
		y: 362436069,
		z: 521288629,
	}
	r.x += uint64(seed)
	return r
}

func (r *RNG) next() uint64 {
	r.x ^= r.x << 16
	r.x ^= r.x >> 5
	r.x ^= r.x << 1

	t := r.x
	r.x = r.y
	r.y = r.z
	r.z = t ^ r.x ^ r.y
	return r.z
}

// Pick returns a uniform integer in [0, n). n must be >= 1.
func (r *RNG) Pick(n int) int {
	if n <= 0 {
		panic("rng: Pick requires n >= 1")
	}
	if n == 1 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// PickWeighted returns 0, 1 or 2 with probability proportional to w0,
// w1, w2. Behavior is unspecified (and the caller must avoid it) if
// all three weights are zero.
func (r *RNG) PickWeighted(w0, w1, w2 float64) int {
	total := w0 + w1 + w2
	cumulative := [3]float64{w0, w0 + w1, total}
	// Sample a uniform real in [0, total) by scaling a uniform int.
	const resolution = 1 << 30
	raw := r.Pick(resolution)
	p := total * float64(raw) / float64(resolution)
	for i := 0; i < 3; i++ {
		if cumulative[i] > p {
			return i
		}
	}
	return 2
}
