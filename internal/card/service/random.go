package service

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniform integers in [0, n). Implementations must be safe for
// concurrent use.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // test card data, not secrets
}

// NewRandomSource returns a source backed by the runtime-seeded global generator.
func NewRandomSource() Source {
	return globalSource{}
}

type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a deterministic source: two sources built from the
// same seed yield the same sequence.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed))} //nolint:gosec // reproducible output
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
