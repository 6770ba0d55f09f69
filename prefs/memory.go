package prefs

import (
	"context"
	"sync"
)

// MemoryStore keeps preferences in-process. Used by tests and anonymous
// sessions that have nothing to persist.
type MemoryStore struct {
	mu   sync.Mutex
	data map[int]map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[int]map[string][]string{}}
}

func (s *MemoryStore) Get(_ context.Context, userID int, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := s.data[userID][key]
	out := make([]string, len(values))
	copy(out, values)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, userID int, key string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data[userID] == nil {
		s.data[userID] = map[string][]string{}
	}
	stored := make([]string, len(values))
	copy(stored, values)
	s.data[userID][key] = stored
	return nil
}

var _ Store = (*MemoryStore)(nil)
