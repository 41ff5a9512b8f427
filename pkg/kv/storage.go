package kv

import "context"

// Storage persists opaque payloads under string keys.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Get returns the payload stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous payload.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Closer is implemented by storages that hold connections or file handles.
type Closer interface {
	Close() error
}

// Close closes s if it implements Closer.
func Close(s Storage) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}
