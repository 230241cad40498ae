package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSelector_SingleElement(t *testing.T) {
	s := NewRandomSelector()
	for i := 0; i < 10; i++ {
		assert.Equal(t, "solo", s.Pick([]string{"solo"}))
	}
}

func TestRandomSelector_CoversPool(t *testing.T) {
	s := NewSeededSelector(42)
	pool := []string{"a", "b", "c", "d"}

	seen := make(map[string]int)
	for i := 0; i < 2000; i++ {
		picked := s.Pick(pool)
		assert.Contains(t, pool, picked)
		seen[picked]++
	}

	// each element should land near 500 of 2000 picks
	for _, p := range pool {
		assert.Greater(t, seen[p], 350, "element %q picked too rarely", p)
	}
}

func TestRandomSelector_SeedIsDeterministic(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f"}
	first, second := NewSeededSelector(7), NewSeededSelector(7)

	for i := 0; i < 50; i++ {
		assert.Equal(t, first.Pick(pool), second.Pick(pool))
	}
}
