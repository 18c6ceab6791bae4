package kv

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when no value exists under the key.
	// Absence of a record is a normal outcome, not a storage failure.
	ErrNotFound = errors.New("kv: key not found")
	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("kv: empty key")
)

// Store is the persistence contract for named text records.
// Implementations must handle concurrent access safely.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the value stored under key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error
}
