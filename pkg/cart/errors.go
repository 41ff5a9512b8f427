package cart

import "errors"

var (
	ErrLoadCart    = errors.New("cart: failed to load persisted cart")
	ErrPersistCart = errors.New("cart: failed to persist cart")
)
