package store

import (
	"context"
	"sync"
)

// NewMemoryStore returns a Store backed by an in-memory map.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// MemoryStore implements Store for tests and ephemeral sessions.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// Put persists the provided value under key.
func (s *MemoryStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

// Get retrieves the value stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	value, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Remove deletes the value stored under key. Removing an absent key is not an error.
func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

// Clear removes every stored value.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.values = make(map[string]string)
	s.mu.Unlock()
	return nil
}

// Has reports whether a key exists. Useful for tests.
func (s *MemoryStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}
