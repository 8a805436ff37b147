// Package pool provides a fixed-capacity object pool for latency-sensitive
// workloads that spawn and despawn transient objects at high rates.
//
// Unlike sync.Pool, which is a GC-assisted cache of optional spares, this
// pool preallocates exactly N elements at construction and never allocates
// again: acquisition and release only toggle per-slot alive markers and run
// the element's activation hooks. That makes occupancy observable
// (Count/Capacity/Stats), exhaustion an explicit condition, and per-frame
// allocation zero.
//
// # Layout
//
// The module follows a package-per-concern layout:
//
//   - pkg/fixedpool: the pool itself (core)
//   - pkg/errors: structured, typed errors used across the module
//   - pkg/config: PoolConfig plus a YAML/JSON loader
//   - pkg/logger: zap-based structured logging
//   - pkg/metrics: Prometheus instrumentation implementing fixedpool.Observer
//   - pkg/strings: pooled string building used on diagnostic paths
//   - pkg/testutil: shared test helpers
//
// See pkg/fixedpool for the pool contract and examples/scene for pooling
// proxies to an external resource.
package pool
