package session

import "errors"

var (
	ErrLoadSession    = errors.New("session: failed to load persisted user")
	ErrPersistSession = errors.New("session: failed to persist user")
)
