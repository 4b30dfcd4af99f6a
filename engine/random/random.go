// Package random wraps math/rand.Rand with deterministic position
// tracking, so a session's random choices can be reproduced from the
// seed for tests and save files.
package random

import "math/rand"

// RNG is a seeded random source. Position increments with every call,
// enabling save/restore.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// New creates a deterministic RNG from a seed.
func New(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// next consumes exactly one value from the source. All public draws go
// through it, so Restore can replay by position alone.
func (r *RNG) next() int64 {
	r.pos++
	return r.src.Int63()
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	return int(r.next() % int64(n))
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next()>>11) / (1 << 52)
}

// Pick returns a random element of lines, or "" if lines is empty.
func (r *RNG) Pick(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[r.Intn(len(lines))]
}

// Seed returns the seed this RNG was created from.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of calls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// Restore creates an RNG and advances it to the given position,
// reproducing the exact state recorded in a save file.
func Restore(seed int64, position int64) *RNG {
	rng := New(seed)
	for i := int64(0); i < position; i++ {
		rng.src.Int63()
	}
	rng.pos = position
	return rng
}
