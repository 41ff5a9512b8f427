package storefront

import "errors"

var (
	// ErrLoginRequired is returned for operations that need a signed-in user.
	ErrLoginRequired = errors.New("storefront: login required")

	// ErrSingleItemCheckout is returned when the cart does not hold exactly one product.
	ErrSingleItemCheckout = errors.New("storefront: checkout requires exactly one product in the cart")

	// ErrUserNotFound is returned when the API accepted credentials but the
	// account is missing from the user list.
	ErrUserNotFound = errors.New("storefront: user not found")
)
