package notifications

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/pkg/broadcast"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

// Queue is a FIFO of self-expiring notifications. It is safe for
// concurrent use; expiry timers run on their own goroutines.
type Queue struct {
	mu              sync.Mutex
	items           []Notification
	timers          map[string]*time.Timer
	closed          bool
	defaultDuration time.Duration
	feed            *broadcast.Signal[[]Notification]
	deliverer       Deliverer
	logger          *slog.Logger
	now             func() time.Time
}

// Option configures a Queue.
type Option func(*Queue)

// WithLogger sets the logger used for delivery failures.
func WithLogger(l *slog.Logger) Option {
	return func(q *Queue) {
		q.logger = l
	}
}

// WithDefaultDuration overrides DefaultDuration.
func WithDefaultDuration(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.defaultDuration = d
		}
	}
}

// WithDeliverer attaches a best-effort deliverer.
func WithDeliverer(d Deliverer) Option {
	return func(q *Queue) {
		q.deliverer = d
	}
}

// WithClock replaces time.Now for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		q.now = now
	}
}

func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		timers:          make(map[string]*time.Timer),
		defaultDuration: DefaultDuration,
		feed:            broadcast.NewSignal[[]Notification](nil),
		logger:          slog.Default(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue appends n with a fresh id and schedules its removal after
// n.Duration. Caller supplied ids are replaced. It returns the new id.
func (q *Queue) Enqueue(n Notification) string {
	n.ID = uuid.NewString()
	if n.Duration <= 0 {
		n.Duration = q.defaultDuration
	}
	if n.Type == "" {
		n.Type = TypeInfo
	}
	n.CreatedAt = q.now()

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return n.ID
	}
	q.items = append(q.items, n)
	id := n.ID
	q.timers[id] = time.AfterFunc(n.Duration, func() { q.remove(id) })
	q.publish()
	q.mu.Unlock()

	if q.deliverer != nil {
		ctx := context.Background()
		if err := q.deliverer.Deliver(ctx, n); err != nil {
			q.logger.LogAttrs(ctx, slog.LevelWarn, "failed to deliver notification",
				logger.NotificationID(n.ID),
				logger.Error(err),
			)
		}
	}
	return n.ID
}

// Dismiss removes the notification immediately. It reports whether the id
// was present; the pending expiry becomes a no-op.
func (q *Queue) Dismiss(id string) bool {
	return q.remove(id)
}

func (q *Queue) remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	idx := slices.IndexFunc(q.items, func(n Notification) bool { return n.ID == id })
	if idx < 0 {
		return false
	}
	q.items = slices.Delete(q.items, idx, idx+1)
	q.publish()
	return true
}

// List returns a copy of the pending notifications, oldest first.
func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.items)
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Subscribe yields the full list after every change, starting with the
// current one.
func (q *Queue) Subscribe(ctx context.Context) broadcast.Subscriber[[]Notification] {
	return q.feed.Subscribe(ctx)
}

// Success enqueues a success notification with an optional title.
func (q *Queue) Success(message string, title ...string) string {
	return q.add(TypeSuccess, message, title)
}

func (q *Queue) Error(message string, title ...string) string {
	return q.add(TypeError, message, title)
}

func (q *Queue) Warning(message string, title ...string) string {
	return q.add(TypeWarning, message, title)
}

func (q *Queue) Info(message string, title ...string) string {
	return q.add(TypeInfo, message, title)
}

func (q *Queue) add(t Type, message string, title []string) string {
	n := Notification{Type: t, Message: message}
	if len(title) > 0 {
		n.Title = title[0]
	}
	return q.Enqueue(n)
}

// Close stops pending timers and ends all subscriptions. Pending
// notifications stay listed; later enqueues are ignored.
func (q *Queue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.mu.Unlock()

	return q.feed.Close()
}

// publish must be called with q.mu held.
func (q *Queue) publish() {
	q.feed.Set(slices.Clone(q.items))
}
