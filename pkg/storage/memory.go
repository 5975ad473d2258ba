package storage

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps benchmarks in process memory. It is used when the
// scheduler runs without a data directory.
type MemoryStore struct {
	mu         sync.RWMutex
	benchmarks map[uuid.UUID]Benchmark
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{benchmarks: make(map[uuid.UUID]Benchmark)}
}

func (s *MemoryStore) SaveBenchmark(b *Benchmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = time.Now()
	}
	s.benchmarks[b.ServerID] = *b
	return nil
}

func (s *MemoryStore) GetBenchmark(serverID uuid.UUID) (*Benchmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.benchmarks[serverID]
	if !ok {
		return nil, fmt.Errorf("benchmark %s: %w", serverID, ErrNotFound)
	}
	return &b, nil
}

// ListBenchmarks returns benchmarks ordered by server ID, matching the key
// order of BoltStore.
func (s *MemoryStore) ListBenchmarks() ([]*Benchmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Benchmark, 0, len(s.benchmarks))
	for _, b := range s.benchmarks {
		out = append(out, &b)
	}
	slices.SortFunc(out, func(a, b *Benchmark) int {
		return strings.Compare(a.ServerID.String(), b.ServerID.String())
	})
	return out, nil
}

func (s *MemoryStore) DeleteBenchmark(serverID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.benchmarks, serverID)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
