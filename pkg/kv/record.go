package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

type envelope[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// Record is a typed JSON value stored under a fixed key.
type Record[T any] struct {
	storage Storage
	key     string
	version int
}

// RecordOption configures a Record.
type RecordOption func(*recordOptions)

type recordOptions struct {
	version int
}

// WithVersion sets the schema version written into the envelope.
// Payloads with a different version are treated as absent by Load.
func WithVersion(v int) RecordOption {
	return func(o *recordOptions) { o.version = v }
}

func NewRecord[T any](storage Storage, key string, opts ...RecordOption) *Record[T] {
	o := &recordOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return &Record[T]{storage: storage, key: key, version: o.version}
}

// Key returns the namespace the record is stored under.
func (r *Record[T]) Key() string {
	return r.key
}

// Load returns the stored state. found is false when nothing is stored under
// the key or the stored version does not match.
func (r *Record[T]) Load(ctx context.Context) (state T, found bool, err error) {
	data, err := r.storage.Get(ctx, r.key)
	if errors.Is(err, ErrNotFound) {
		return state, false, nil
	}
	if err != nil {
		return state, false, err
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return state, false, errors.Join(ErrDecodeRecord, fmt.Errorf("%s: %w", r.key, err))
	}
	if env.Version != r.version {
		return state, false, nil
	}
	return env.State, true, nil
}

// Save encodes state and writes it synchronously.
func (r *Record[T]) Save(ctx context.Context, state T) error {
	data, err := json.Marshal(envelope[T]{State: state, Version: r.version})
	if err != nil {
		return errors.Join(ErrEncodeRecord, fmt.Errorf("%s: %w", r.key, err))
	}
	return r.storage.Set(ctx, r.key, data)
}

// Clear removes the stored state.
func (r *Record[T]) Clear(ctx context.Context) error {
	return r.storage.Delete(ctx, r.key)
}
