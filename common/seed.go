package common

import "github.com/cespare/xxhash/v2"

// Rand is the source of randomness used by the simulation.
// Float64 returns a value in [0, 1).
type Rand interface {
	Float64() float64
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

var _ Rand = (*SeededRNG)(nil)

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SeedFromString derives a generator seed from an arbitrary string, such as a session id.
func SeedFromString(s string) uint32 {
	h := xxhash.Sum64String(s)
	return uint32(h) ^ uint32(h>>32)
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset resets the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Float64 returns the next value of the Mulberry32 sequence in [0, 1).
func (r *SeededRNG) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Intn returns a uniform integer in [0, n). n must be positive.
func Intn(r Rand, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Between returns a uniform float in [min, max).
func Between(r Rand, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}
