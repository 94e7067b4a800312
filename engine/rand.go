package engine

import (
	"math/rand/v2"
)

// RandResource is the seeded random source for spawn placement
type RandResource struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandResource creates a PCG source from seed
func NewRandResource(seed uint64) *RandResource {
	return &RandResource{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the source was created with
func (r *RandResource) Seed() uint64 {
	return r.seed
}

// Spread returns a uniform value in [-half, half)
func (r *RandResource) Spread(half float64) float64 {
	return (r.rng.Float64() - 0.5) * 2 * half
}
