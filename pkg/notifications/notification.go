package notifications

import "time"

// Type is the notification severity.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// DefaultDuration is used when a notification has no positive Duration.
const DefaultDuration = 5 * time.Second

// Notification is a transient message. Title is optional.
type Notification struct {
	ID        string        `json:"id" yaml:"id"`
	Type      Type          `json:"type" yaml:"type"`
	Title     string        `json:"title,omitempty" yaml:"title,omitempty"`
	Message   string        `json:"message" yaml:"message"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
}

// ExpiresAt returns the moment the notification is due for removal.
func (n Notification) ExpiresAt() time.Time {
	return n.CreatedAt.Add(n.Duration)
}
