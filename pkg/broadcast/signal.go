package broadcast

import (
	"context"
	"sync"
)

// Signal is an observable value with a single writer and many readers.
// Each subscriber holds at most one pending value and always converges to
// the latest one.
type Signal[T any] struct {
	mu    sync.Mutex
	value T
	b     *MemoryBroadcaster[T]
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	b := NewMemoryBroadcaster[T](1)
	b.conflate = true
	return &Signal[T]{value: initial, b: b}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and publishes it to every subscriber.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	_ = s.b.Broadcast(context.Background(), Message[T]{Data: v})
}

// Subscribe returns a subscriber whose channel already holds the current value.
func (s *Signal[T]) Subscribe(ctx context.Context) Subscriber[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.b.subscribe(ctx)
	if !sub.isClosed() {
		sub.replace(Message[T]{Data: s.value})
	}
	return sub
}

// Close ends all subscriptions. Get keeps returning the last value.
func (s *Signal[T]) Close() error {
	return s.b.Close()
}
