// Package random is a small seedable generator for jitter and test data.
package random

import "math/rand/v2"

const floatSteps = 32767

// Source produces a repeatable sequence for a given seed. It is not safe
// for concurrent use.
type Source struct {
	pcg *rand.PCG
	rng *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	pcg := rand.NewPCG(seed, seed)
	return &Source{pcg: pcg, rng: rand.New(pcg)}
}

// Seed restarts the sequence from seed.
func (s *Source) Seed(seed uint64) {
	s.pcg.Seed(seed, seed)
}

// Int returns a non-negative value in [0, MaxInt32].
func (s *Source) Int() int {
	return int(s.rng.Int32())
}

// IntInRange returns a value in [lo, hi]. It requires lo <= hi.
func (s *Source) IntInRange(lo, hi int) int {
	return lo + s.Int()%(hi-lo+1)
}

// Float32InRange returns a value in [lo, hi], quantized to 32767 steps.
func (s *Source) Float32InRange(lo, hi float32) float32 {
	r := float32(s.Int()&floatSteps) / floatSteps
	return (hi-lo)*r + lo
}
