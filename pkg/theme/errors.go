package theme

import "errors"

var (
	ErrInvalidTheme = errors.New("theme: invalid theme")
	ErrLoadTheme    = errors.New("theme: failed to load persisted theme")
	ErrPersistTheme = errors.New("theme: failed to persist theme")
)
