package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/ribbon/pkg/domain"
)

// Store implements ports.TraceStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Trace
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Trace),
	}
}

// Save persists a copy of the trace in memory.
func (s *Store) Save(ctx context.Context, trace *domain.Trace) error {
	copied := trace.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[trace.ID] = copied
	return nil
}

// Load retrieves a copy of the trace so callers cannot mutate the stored one.
func (s *Store) Load(ctx context.Context, id string) (*domain.Trace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trace, ok := s.data[id]
	if !ok {
		return nil, domain.ErrTraceNotFound
	}
	return trace.Clone(), nil
}

// Delete removes the trace.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored trace IDs in ascending order, which is creation order for ULIDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}
