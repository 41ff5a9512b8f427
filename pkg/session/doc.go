// Package session remembers the signed-in shopper between runs.
//
// The current user is persisted under the "user-storage" key of a
// kv.Storage. A nil user means the shopper is browsing anonymously.
// Signing out is orchestrated by the storefront service, which also clears
// the cart.
package session
