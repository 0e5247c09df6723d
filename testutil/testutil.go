package testutil

import (
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int64Between returns a pseudo-random number in [lo, hi].
// It panics if hi < lo.
func (r *RNG) Int64Between(lo, hi int64) int64 {
	if hi < lo {
		panic("testutil: invalid range")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rand.Int63n(hi-lo+1)
}

// Float64 returns a pseudo-random number in [-1.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()*2 - 1
}

// MaxDecimalScale is the largest scale accepted by Decimal.
const MaxDecimalScale = 14

// Decimal returns a pseudo-random decimal in (-10000, 10000) with at most
// scale fractional digits.
// It panics if scale is outside [0, MaxDecimalScale].
func (r *RNG) Decimal(scale int32) decimal.Decimal {
	if scale < 0 || scale > MaxDecimalScale {
		panic("testutil: invalid decimal scale")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	unit := int64(1)
	for range scale {
		unit *= 10
	}
	bound := 10000 * unit
	v := r.rand.Int63n(2*bound-1) - (bound - 1)
	return decimal.New(v, -scale)
}
