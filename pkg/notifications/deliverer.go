package notifications

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/storefront/pkg/logger"
)

// Deliverer mirrors newly enqueued notifications to another channel.
// Delivery is best effort; failures are logged and never affect the queue.
type Deliverer interface {
	Deliver(ctx context.Context, n Notification) error
}

// DelivererFunc adapts a function to Deliverer.
type DelivererFunc func(ctx context.Context, n Notification) error

func (f DelivererFunc) Deliver(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// LogDeliverer writes each notification as a log record. Errors are logged
// at ERROR, warnings at WARN and everything else at INFO.
type LogDeliverer struct {
	logger *slog.Logger
}

func NewLogDeliverer(l *slog.Logger) *LogDeliverer {
	if l == nil {
		l = slog.Default()
	}
	return &LogDeliverer{logger: l}
}

func (d *LogDeliverer) Deliver(ctx context.Context, n Notification) error {
	level := slog.LevelInfo
	switch n.Type {
	case TypeError:
		level = slog.LevelError
	case TypeWarning:
		level = slog.LevelWarn
	}
	d.logger.LogAttrs(ctx, level, n.Message,
		logger.NotificationID(n.ID),
		slog.String("type", string(n.Type)),
		slog.String("title", n.Title),
	)
	return nil
}
