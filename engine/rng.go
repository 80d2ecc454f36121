package engine

import "math/rand"

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position increments with every call, so a trace can tell how much
// randomness a game consumed.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random integer in [0, n). It satisfies deck.Intner.
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// Int63 returns a non-negative random int64, used to seed the next game.
func (r *RNG) Int63() int64 {
	r.pos++
	return r.src.Int63()
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of RNG calls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}
