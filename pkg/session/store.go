package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

// StorageKey is the namespace the session is persisted under.
const StorageKey = "user-storage"

// User is the signed-in shopper as returned by the API.
type User struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

type state struct {
	CurrentUser *User `json:"currentUser"`
}

// Store holds the optional current user.
type Store struct {
	mu     sync.RWMutex
	user   *User
	record *kv.Record[state]
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open restores the persisted session. An unreadable payload is logged and
// treated as an anonymous session.
func Open(ctx context.Context, storage kv.Storage, opts ...Option) (*Store, error) {
	s := &Store{
		record: kv.NewRecord[state](storage, StorageKey),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	st, found, err := s.record.Load(ctx)
	switch {
	case errors.Is(err, kv.ErrDecodeRecord):
		s.logger.LogAttrs(ctx, slog.LevelWarn, "discarding unreadable session",
			logger.Key(StorageKey),
			logger.Error(err),
		)
	case err != nil:
		return nil, errors.Join(ErrLoadSession, err)
	case found:
		s.user = st.CurrentUser
	}
	return s, nil
}

// User returns a copy of the current user or nil.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// SetUser replaces the current user; nil signs out. The change is persisted
// before it becomes visible, so a failed write leaves the session unchanged.
func (s *Store) SetUser(ctx context.Context, user *User) error {
	var next *User
	if user != nil {
		u := *user
		next = &u
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record.Save(ctx, state{CurrentUser: next}); err != nil {
		return errors.Join(ErrPersistSession, err)
	}
	s.user = next
	return nil
}

// Clear signs the user out.
func (s *Store) Clear(ctx context.Context) error {
	return s.SetUser(ctx, nil)
}
