package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has no stored value.
// Callers treat it as "nothing saved yet", never as a failure.
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable key-value layer the state containers persist to,
// the server-side stand-in for the browser's local storage.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
