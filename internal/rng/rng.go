package rng

import (
	"math/rand"
	"sync"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// Math is a seeded pseudo-random source. It is safe for concurrent use.
type Math struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMath returns a pseudo-random source seeded with seed
func NewMath(seed int64) *Math {
	return &Math{
		rnd: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (m *Math) Intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.rnd.Intn(n)
}
