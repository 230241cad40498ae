package utils

import (
	"sync"

	"pgregory.net/rand"
)

// Selector picks one phrase out of a pool
type Selector interface {
	Pick(pool []string) string
}

// RandomSelector picks uniformly at random
type RandomSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSelector creates a selector seeded from the system entropy source
func NewRandomSelector() *RandomSelector {
	return &RandomSelector{rng: rand.New()}
}

// NewSeededSelector creates a deterministic selector
func NewSeededSelector(seed uint64) *RandomSelector {
	return &RandomSelector{rng: rand.New(seed)}
}

// Pick returns one element of pool chosen with uniform probability.
// Callers must not pass an empty pool.
func (s *RandomSelector) Pick(pool []string) string {
	s.mu.Lock()
	idx := s.rng.Intn(len(pool))
	s.mu.Unlock()
	return pool[idx]
}
