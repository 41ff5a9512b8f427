// Package kv defines the durable key/value contract behind the persisted
// storefront stores and ships the in-process implementations.
//
// A Storage maps a fixed namespace key (for example "cart-storage") to an
// opaque byte payload. Backends for Redis, PostgreSQL, MongoDB, SQLite and S3
// live in their own packages and satisfy the same interface.
//
// Record[T] layers a typed JSON envelope on top of a Storage:
//
//	rec := kv.NewRecord[cartState](storage, "cart-storage")
//	state, found, err := rec.Load(ctx)
//	...
//	err = rec.Save(ctx, state)
//
// The envelope is {"state": ..., "version": N}. Save returns only after the
// backend acknowledged the write, so a Load issued afterwards in the same
// process observes it.
//
// Instrument wraps any Storage with Prometheus counters and latency histograms.
package kv
