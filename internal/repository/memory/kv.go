// Package memory keeps repository data in process memory.
package memory

import (
	"context"
	"slices"
	"sync"

	"mufasa/fitness-brain/internal/repository"
)

// KVStore is an in-memory repository.KVStore safe for concurrent use.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ repository.KVStore = (*KVStore)(nil)

// NewKVStore creates an empty store.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

func (s *KVStore) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return slices.Clone(v), nil
}

func (s *KVStore) Write(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = slices.Clone(value)
	return nil
}
