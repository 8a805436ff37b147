package fixedpool

import "go.uber.org/zap"

// Option configures a Pool at construction time.
type Option[T Poolable] func(*Pool[T])

// WithIndexedRelease selects the O(1) release strategy: a reverse index
// from element identity to slot index is built once during construction, at
// the cost of one map entry per slot. Release and Contains behave
// identically to the default linear-scan strategy, only faster for large
// capacities.
func WithIndexedRelease[T Poolable]() Option[T] {
	return func(p *Pool[T]) {
		p.index = make(map[T]int)
	}
}

// WithName labels the pool in logs, errors, and stats snapshots.
func WithName[T Poolable](name string) Option[T] {
	return func(p *Pool[T]) {
		if name != "" {
			p.name = name
		}
	}
}

// WithLogger attaches a logger for pool lifecycle events. Without it the
// pool is silent.
func WithLogger[T Poolable](log *zap.Logger) Option[T] {
	return func(p *Pool[T]) {
		if log != nil {
			p.log = log
		}
	}
}

// WithObserver attaches external instrumentation. The pool calls the
// observer synchronously from Get, TryGet, Release, and Clear; observers
// must be cheap. See pkg/metrics for a Prometheus-backed implementation.
func WithObserver[T Poolable](obs Observer) Option[T] {
	return func(p *Pool[T]) {
		p.obs = obs
	}
}

// Observer receives pool state transitions for instrumentation. Implemented
// by metrics.Collector; defined here so the core carries no metrics
// dependency.
type Observer interface {
	// ObserveAcquire is called after a slot transitions dead to alive.
	ObserveAcquire(live, capacity int)
	// ObserveRelease is called after one or more slots transition alive
	// to dead.
	ObserveRelease(live int)
	// ObserveExhaustion is called when an acquisition finds no dead slot.
	ObserveExhaustion()
}
