package randutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 100 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestDeriveStreamsDiffer(t *testing.T) {
	assert.Equal(t, Derive(5, 1).Uint64(), Derive(5, 1).Uint64())
	assert.NotEqual(t, Derive(5, 1).Uint64(), Derive(5, 2).Uint64())
	assert.Equal(t, New(DeriveSeed(5, 3)).Uint64(), Derive(5, 3).Uint64())
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(9), Seed(9))
	assert.NotZero(t, Seed(0))
}

func TestLockedConcurrentUse(t *testing.T) {
	l := NewLocked(3)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				v := l.IntN(3)
				assert.True(t, v >= 0 && v < 3)
				f := l.Float64()
				assert.True(t, f >= 0 && f < 1)
			}
		}()
	}
	wg.Wait()
}
