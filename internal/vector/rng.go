package vector

import "math/rand"

// RNG is a thread-local random source. Each render worker owns its own RNG
// so that streams are independent across goroutines with no locking; see
// DESIGN.md for why math/rand's Source64 stands in for the spec's
// "Mersenne-Twister-like 64-bit engine".
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG seeded directly from a 64-bit seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(int64(seed)))}
}

// DeriveSeed mixes a base seed with a worker index using splitmix64, so that
// per-worker engines seeded from the same base seed produce independent but
// reproducible streams (spec §9 "Open questions" / RNG design note).
func DeriveSeed(base uint64, index int) uint64 {
	z := base + uint64(index)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Float returns a uniform random float64 in [0, 1).
func (g *RNG) Float() float64 {
	return g.r.Float64()
}

// FloatRange returns a uniform random float64 in [i.Min, i.Max).
func (g *RNG) FloatRange(i Interval[float64]) float64 {
	return i.Min + (i.Max-i.Min)*g.r.Float64()
}
