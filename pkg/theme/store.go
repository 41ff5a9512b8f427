package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/storefront/pkg/broadcast"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

// StorageKey is the namespace the theme is persisted under.
const StorageKey = "theme-storage"

type state struct {
	Theme Theme `json:"theme"`
}

// Store is the single writer of the theme signal.
type Store struct {
	mu     sync.Mutex
	record *kv.Record[state]
	signal *broadcast.Signal[Theme]
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open restores the persisted theme, falling back to Default when nothing
// usable is stored. The restored value is what new subscribers see first.
func Open(ctx context.Context, storage kv.Storage, opts ...Option) (*Store, error) {
	s := &Store{
		record: kv.NewRecord[state](storage, StorageKey),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	current := Default
	st, found, err := s.record.Load(ctx)
	switch {
	case errors.Is(err, kv.ErrDecodeRecord):
		s.logger.LogAttrs(ctx, slog.LevelWarn, "discarding unreadable theme",
			logger.Key(StorageKey),
			logger.Error(err),
		)
	case err != nil:
		return nil, errors.Join(ErrLoadTheme, err)
	case found && st.Theme.Valid():
		current = st.Theme
	case found:
		s.logger.LogAttrs(ctx, slog.LevelWarn, "ignoring unknown persisted theme",
			slog.String("theme", string(st.Theme)),
		)
	}

	s.signal = broadcast.NewSignal(current)
	return s, nil
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	return s.signal.Get()
}

// Set persists t and publishes it.
func (s *Store) Set(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, string(t))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, t)
}

// Toggle flips between light and dark and returns the new theme.
func (s *Store) Toggle(ctx context.Context) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.signal.Get().Opposite()
	if err := s.apply(ctx, next); err != nil {
		return s.signal.Get(), err
	}
	return next, nil
}

func (s *Store) apply(ctx context.Context, t Theme) error {
	if err := s.record.Save(ctx, state{Theme: t}); err != nil {
		return errors.Join(ErrPersistTheme, err)
	}
	s.signal.Set(t)
	return nil
}

// Subscribe delivers the current theme and every later change.
func (s *Store) Subscribe(ctx context.Context) broadcast.Subscriber[Theme] {
	return s.signal.Subscribe(ctx)
}

// Close ends all subscriptions.
func (s *Store) Close() error {
	return s.signal.Close()
}
