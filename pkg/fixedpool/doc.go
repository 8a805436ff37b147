// Package fixedpool implements a fixed-capacity object pool: a preallocated
// collection of reusable slots that avoids per-acquisition heap allocation
// and garbage collection overhead. It is intended for latency-sensitive
// workloads that spawn and despawn transient objects at high rates, such as
// projectiles, particles, or proxy handles to external resources.
//
// # Architecture
//
// A Pool[T] owns a contiguous slot array of exactly `capacity` elements,
// constructed once by the factory function and never replaced, plus a
// parallel alive-marker array. Acquisition flips a dead slot alive and hands
// out the resident element; release flips it back. Elements are never
// destroyed by the pool; they remain resident until the whole pool is
// discarded.
//
// Core Types:
//
//   - Pool[T]: the fixed-capacity pool
//   - Poolable: the capability constraint elements must satisfy
//   - Stats: a point-in-time snapshot of pool counters
//   - Observer: hook for external instrumentation (see pkg/metrics)
//
// # Free-Slot Search
//
// Acquisition scans the alive markers linearly starting at a persisted scan
// cursor, wrapping at the end of the array. Under typical churn, where
// elements are released roughly in acquisition order, the cursor keeps the
// amortized scan cost near O(1); worst case is O(capacity). Releasing a slot
// moves the cursor onto it, so the very next acquisition reuses the slot
// just freed.
//
// # Usage
//
//	type Bullet struct{ active bool }
//
//	func (b *Bullet) OnGet()     { b.active = true }
//	func (b *Bullet) OnRelease() { b.active = false }
//
//	pool, err := fixedpool.New(256, func() *Bullet { return &Bullet{} })
//	if err != nil {
//	    return err
//	}
//
//	bullet, err := pool.Get()
//	if err != nil {
//	    return err // every slot alive
//	}
//	// ... use bullet ...
//	pool.Release(bullet)
//
// # Concurrency
//
// The pool is single-threaded by design and provides no internal
// synchronization. The scan-then-mark sequence in Get is not atomic, so
// callers using a pool from multiple goroutines must serialize every
// operation with their own mutual exclusion.
//
// # Release Strategies
//
// Release and Contains locate a slot by element identity. The default
// strategy is an O(capacity) linear scan with no extra memory. Constructing
// the pool with WithIndexedRelease builds a reverse index (one map entry per
// slot, populated once at construction) giving O(1) lookup with identical
// observable semantics.
package fixedpool
