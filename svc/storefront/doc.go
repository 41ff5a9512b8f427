// Package storefront wires the client-side stores to the backend API and
// implements the shopper's use cases: signing in and out, checking out,
// reviewing products and assembling the product detail page.
//
// Business rejections are returned as sentinel errors and, like API
// failures, are also reported to the shopper through the notification
// queue. Prior state is never modified by a failed operation.
package storefront
