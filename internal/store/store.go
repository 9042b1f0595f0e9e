package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the requested key has no stored value.
	ErrNotFound = errors.New("key not found")
)

// Store is a durable key/value store for session state. It survives process
// restarts and is written by a single owner (the session manager) by
// convention; no cross-key transactional guarantee is provided.
type Store interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
