package cart

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/storefront/pkg/catalog"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

// StorageKey is the namespace the cart is persisted under.
const StorageKey = "cart-storage"

// Entry is one cart line. Quantity is always at least 1.
type Entry struct {
	Product  catalog.Product `json:"game" yaml:"product"`
	Quantity int             `json:"quantity" yaml:"quantity"`
}

// Subtotal is price times quantity.
func (e Entry) Subtotal() float64 {
	return e.Product.Price * float64(e.Quantity)
}

type state struct {
	Items []Entry `json:"items"`
}

// Store is the cart. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	items  []Entry
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

// Open restores the persisted cart. Unreadable payloads and entries with a
// non-positive quantity are dropped with a warning.
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
		s.logger.LogAttrs(ctx, slog.LevelWarn, "discarding unreadable cart",
			logger.Key(StorageKey),
			logger.Error(err),
		)
	case err != nil:
		return nil, errors.Join(ErrLoadCart, err)
	case found:
		s.items = s.sanitize(ctx, st.Items)
	}
	return s, nil
}

func (s *Store) sanitize(ctx context.Context, items []Entry) []Entry {
	out := make([]Entry, 0, len(items))
	for _, e := range items {
		if e.Quantity < 1 || slices.ContainsFunc(out, func(o Entry) bool { return o.Product.ID == e.Product.ID }) {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "dropping invalid cart entry",
				logger.ProductID(e.Product.ID),
				slog.Int("quantity", e.Quantity),
			)
			continue
		}
		out = append(out, e)
	}
	return out
}

// Add puts one unit of p in the cart, appending a new entry or
// incrementing the existing one.
func (s *Store) Add(ctx context.Context, p catalog.Product) error {
	return s.mutate(ctx, func(items []Entry) []Entry {
		if i := indexOf(items, p.ID); i >= 0 {
			items[i].Quantity++
			return items
		}
		return append(items, Entry{Product: p, Quantity: 1})
	})
}

// Remove deletes the entry for id. Removing an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(items []Entry) []Entry {
		if i := indexOf(items, id); i >= 0 {
			return slices.Delete(items, i, i+1)
		}
		return items
	})
}

// SetQuantity sets the quantity of an existing entry. A quantity of zero
// or less removes it; an absent id is a no-op.
func (s *Store) SetQuantity(ctx context.Context, id int64, qty int) error {
	if qty <= 0 {
		return s.Remove(ctx, id)
	}
	return s.mutate(ctx, func(items []Entry) []Entry {
		if i := indexOf(items, id); i >= 0 {
			items[i].Quantity = qty
		}
		return items
	})
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	return s.mutate(ctx, func([]Entry) []Entry { return nil })
}

// mutate applies fn to a copy of the items and persists the result before
// swapping it in.
func (s *Store) mutate(ctx context.Context, fn func([]Entry) []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(slices.Clone(s.items))
	if next == nil {
		next = []Entry{}
	}
	if err := s.record.Save(ctx, state{Items: next}); err != nil {
		return errors.Join(ErrPersistCart, err)
	}
	s.items = next
	return nil
}

// Items returns a copy of the entries in insertion order.
func (s *Store) Items() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Get returns the entry for id.
func (s *Store) Get(id int64) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.items, id); i >= 0 {
		return s.items[i], true
	}
	return Entry{}, false
}

func (s *Store) Contains(id int64) bool {
	_, ok := s.Get(id)
	return ok
}

// Len returns the number of distinct products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// TotalPrice sums price times quantity over all entries.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, e := range s.items {
		total += e.Subtotal()
	}
	return total
}

// ItemCount sums the quantities.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int
	for _, e := range s.items {
		n += e.Quantity
	}
	return n
}

func indexOf(items []Entry, id int64) int {
	return slices.IndexFunc(items, func(e Entry) bool { return e.Product.ID == id })
}
