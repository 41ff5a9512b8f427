// Package cart holds the shopper's cart: an insertion-ordered map from
// product id to product and quantity, persisted under "cart-storage".
//
// Every mutation writes the whole cart before returning. If the write
// fails the in-memory cart is rolled back, so what the shopper sees always
// matches what is stored.
package cart
