package kv

import (
	"context"
	"sync"
)

// MemoryStore implements Store using an in-process map.
// It is safe for concurrent use and suitable for tests and for hosts
// without a durable backend; data does not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
	}
}

// Get returns a copy of the value stored under key, or ErrNotFound.
func (ms *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	ms.mu.RLock()
	defer ms.mu.RUnlock()

	value, ok := ms.records[key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a copy of value under key.
func (ms *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.records[key] = stored
	return nil
}

// Delete removes the value stored under key. Missing keys are ignored.
func (ms *MemoryStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.records, key)
	return nil
}

// Len returns the number of stored records.
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return len(ms.records)
}
