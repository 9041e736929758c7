// Package randutil derives reproducible random sources from a single seed.
package randutil

import (
	rand "math/rand/v2"
	"sync"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Both PCG words
// are derived here so every call site gets the same sequence for the same
// seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Derive returns an independent stream for a numbered sub-component (a bot,
// a simulated episode) so that adding one consumer does not shift the
// sequence seen by another.
func Derive(seed int64, stream uint64) *rand.Rand {
	return New(DeriveSeed(seed, stream))
}

// DeriveSeed returns the seed Derive uses for stream, for callers that need
// to record it.
func DeriveSeed(seed int64, stream uint64) int64 {
	return int64(splitmix(uint64(seed) ^ (stream * goldenRatio64)))
}

// Seed returns seed unchanged when non-zero, otherwise a time-derived seed.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Locked wraps a source so it can be shared between goroutines.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewLocked(seed int64) *Locked {
	return &Locked{rng: New(seed)}
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.IntN(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
