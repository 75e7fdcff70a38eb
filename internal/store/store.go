// Package store is the in-memory backend used in mock mode. It holds every
// collection of the console and simulates the server's semantics with zero
// persistence: data is seeded at construction and resets with the process.
package store

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hmartins/secconsole/internal/model"
)

// mockUserID is stamped as the author of records created through the store.
const mockUserID = "mock-user-id"

type Store struct {
	mu  sync.RWMutex
	now func() time.Time
	rng *rand.Rand

	assets    []model.Asset
	vulns     []model.Vulnerability
	scans     []model.ScanTask
	results   map[int64][]model.ScanResult
	baselines []model.SecurityBaseline
	checks    []model.BaselineCheck
	reports   []model.Report
}

type Option func(*Store)

// WithClock replaces the wall clock. Tests use it to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSeed pins the PRNG driving synthesized scan results and baseline
// check sampling, making those operations reproducible.
func WithSeed(seed int64) Option {
	return func(s *Store) { s.rng = rand.New(rand.NewSource(seed)) }
}

func New(opts ...Option) *Store {
	s := &Store{
		now: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

// Reset discards all mutations and reloads the seed fixtures.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed()
}
