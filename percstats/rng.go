// Package percstats - RNG utilities shared by Trial and Run.
//
// Goals:
//   - Determinism: same (seed, trial index) ⇒ identical trial on every platform.
//   - Independence: distinct seeds and distinct indices give uncorrelated streams.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each trial builds its own via trialRNG.
package percstats

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// randSource adapts *rand.Rand to Source. Not goroutine-safe.
type randSource struct {
	r *rand.Rand
}

// NewRandSource wraps r as a Source. A nil r uses the default seed.
func NewRandSource(r *rand.Rand) Source {
	if r == nil {
		r = rngFromSeed(0)
	}

	return &randSource{r: r}
}

// Uniform returns an integer in [lo, hi]. It panics if hi < lo.
func (s *randSource) Uniform(lo, hi int) int {
	return lo + s.r.Intn(hi-lo+1)
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// splitmix64 is the SplitMix64 finalizer: a bijection on uint64 with full
// avalanche, so every input bit affects every output bit.
//
// Complexity: O(1).
func splitmix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// deriveSeed mixes a parent seed and a stream id into a new seed.
//
// Rationale:
//   - The parent is fully mixed before the stream is added. Combining the raw
//     parent with the stream first would let (p1, s1) and (p2, s2) meet at
//     the same pre-mix value, so two seeds would share their trial streams.
//   - The stream is scaled by the odd golden-ratio constant (a bijection mod
//     2^64), so distinct streams under one parent never collide.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = splitmix64(uint64(parent) + 0x9e3779b97f4a7c15)
	x += (stream + 1) * 0x9e3779b97f4a7c15
	x = splitmix64(x)
	return int64(x)
}

// trialRNG returns the independent RNG for trial index i under seed.
// Policy: seed==0 ⇒ defaultRNGSeed, matching rngFromSeed.
//
// Notes:
//   - The stream depends only on (seed, i), never on scheduling, which is what
//     makes Run's output independent of the worker count.
//
// Complexity: O(1).
func trialRNG(seed int64, i int) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(s, uint64(i))))
}
