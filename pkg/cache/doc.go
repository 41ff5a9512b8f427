// Package cache provides a generic, thread-safe LRU cache whose entries
// optionally expire after a fixed TTL.
//
// The API client uses it to keep reference data such as genres and
// platforms between calls:
//
//	c := cache.New[string, []byte](64, cache.WithTTL(5*time.Minute))
//	c.Put("/genres/", body)
//	body, ok := c.Get("/genres/")
//
// Expired entries are dropped lazily on access.
package cache
