package kv

import "errors"

var (
	// ErrNotFound is returned by Storage.Get when the key has no value.
	ErrNotFound = errors.New("kv: key not found")

	// ErrInvalidKey is returned for empty keys or keys that cannot be mapped to the backend.
	ErrInvalidKey = errors.New("kv: invalid key")

	// ErrDecodeRecord is returned when a stored payload cannot be decoded.
	ErrDecodeRecord = errors.New("kv: failed to decode record")

	// ErrEncodeRecord is returned when a record cannot be encoded.
	ErrEncodeRecord = errors.New("kv: failed to encode record")
)
