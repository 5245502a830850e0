// Package xorshift implements Marsaglia's 32-bit xorshift generator.
// It is the only source of randomness in the simulation, so a fixed seed
// reproduces a whole round.
package xorshift

import "math"

// defaultSeed replaces a zero seed; xorshift never leaves the all-zero state.
const defaultSeed uint32 = 2463534242

// Rand is a xorshift32 generator. The zero value is not usable; call New.
type Rand struct {
	state uint32
}

// New creates a generator with the given seed.
func New(seed uint32) *Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Rand{state: seed}
}

// Seed64 folds a 64-bit seed (as passed on the command line) into 32 bits.
func Seed64(seed int64) uint32 {
	u := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	return uint32(u) ^ uint32(u>>32)
}

// Uint32 advances the generator and returns the new state.
func (r *Rand) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Unit returns a float in [0, 1).
// The low 23 bits of a draw become the mantissa of a float in [1, 2).
func (r *Rand) Unit() float32 {
	bits := (r.Uint32() & 0x007fffff) | 0x3f800000
	return math.Float32frombits(bits) - 1.0
}

// State returns the current generator state.
func (r *Rand) State() uint32 {
	return r.state
}
