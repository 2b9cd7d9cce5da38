package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// SampleIndices returns k distinct indices drawn uniformly from [0, n).
// When k >= n every index is returned.
func (r *RNG) SampleIndices(n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	r.r.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	if k > n {
		k = n
	}
	return idx[:k]
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
