package fixedpool

import (
	"iter"

	"go.uber.org/zap"

	"github.com/nothke/Pool/pkg/config"
	"github.com/nothke/Pool/pkg/errors"
)

// Poolable is the capability constraint every pooled element type must
// satisfy. Elements must be comparable so the pool can locate a slot by
// element identity on Release and Contains; pointer types satisfy this
// naturally and are the recommended choice.
//
// The hooks are invoked by the pool on slot state transitions:
//
//   - OnGet is called each time a slot transitions dead to alive, e.g. to
//     re-enable a resource.
//   - OnRelease is called each time a slot transitions alive to dead, e.g.
//     to disable a resource.
//
// One-time initialization is expressed by the factory function passed to
// New, which is invoked exactly once per slot at construction. Construction
// parameters such as a prototype to copy from are captured by the factory
// closure.
type Poolable interface {
	comparable
	OnGet()
	OnRelease()
}

// Factory constructs one pool element. It is called exactly capacity times
// during New and never again for the lifetime of the pool.
type Factory[T Poolable] func() T

// Pool is a fixed-capacity object pool over elements of type T.
//
// Capacity is immutable after construction. Exactly one element occupies
// each slot for the pool's entire lifetime; acquisition and release only
// toggle the slot's alive marker and invoke the element's hooks.
//
// A Pool must not be used from multiple goroutines without external
// synchronization.
type Pool[T Poolable] struct {
	items []T
	alive []bool

	// seek is the index where the next free-slot scan begins. It is
	// persisted across calls: it stays on the last acquired slot and is
	// moved onto a slot when that slot is released, so release-then-get
	// churn reuses slots with an O(1) scan.
	seek int
	live int

	// index maps element identity to slot index when the pool was built
	// with WithIndexedRelease. Populated once at construction; slots never
	// move, so it is never resized or rewritten.
	index map[T]int

	name  string
	log   *zap.Logger
	obs   Observer
	stats counters
}

type counters struct {
	acquired  uint64
	released  uint64
	exhausted uint64
	cleared   uint64
}

// New creates a pool of exactly capacity elements, each constructed once by
// factory. All slots start dead, the live count is zero, and the scan
// cursor is at slot 0.
//
// A non-positive capacity is rejected with a validation error, not clamped.
// A nil factory is likewise rejected.
//
// Example:
//
//	pool, err := fixedpool.New(64,
//	    func() *Particle { return NewParticle(prototype) },
//	    fixedpool.WithIndexedRelease[*Particle](),
//	)
func New[T Poolable](capacity int, factory Factory[T], opts ...Option[T]) (*Pool[T], error) {
	if capacity <= 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "pool capacity must be positive").
			WithDetail("capacity", capacity)
	}
	if factory == nil {
		return nil, errors.New(errors.ErrorTypeValidation, "pool factory must not be nil")
	}

	p := &Pool[T]{
		items: make([]T, capacity),
		alive: make([]bool, capacity),
		name:  "fixedpool",
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	for i := range p.items {
		p.items[i] = factory()
	}
	if p.index != nil {
		for i, item := range p.items {
			p.index[item] = i
		}
	}

	p.log.Debug("pool constructed",
		zap.String("pool", p.name),
		zap.Int("capacity", capacity),
		zap.Bool("indexed", p.index != nil))
	return p, nil
}

// NewFromConfig creates a pool from a validated PoolConfig. The config
// supplies capacity, the release strategy, and the pool name; explicit
// options are applied afterwards and take precedence.
func NewFromConfig[T Poolable](cfg *config.PoolConfig, factory Factory[T], opts ...Option[T]) (*Pool[T], error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrorTypeConfig, "pool config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "invalid pool config")
	}

	base := []Option[T]{WithName[T](cfg.Name)}
	if cfg.IndexedRelease {
		base = append(base, WithIndexedRelease[T]())
	}
	return New(cfg.Capacity, factory, append(base, opts...)...)
}

// Get acquires a dead slot, marks it alive, invokes the element's OnGet
// hook, and returns the resident element. This is the fatal acquisition
// form: when every slot is alive it returns an exhausted error (check with
// IsExhausted) and performs no mutation. Call sites that want to treat
// exhaustion as a normal branch should use TryGet instead.
func (p *Pool[T]) Get() (T, error) {
	item, ok := p.TryGet()
	if !ok {
		var zero T
		return zero, errors.New(errors.ErrorTypeExhausted, "all pool slots are alive").
			WithDetail("pool", p.name).
			WithDetail("capacity", len(p.items))
	}
	return item, nil
}

// TryGet is the non-fatal acquisition form. It runs the same scan as Get
// but reports exhaustion with a false flag instead of an error.
func (p *Pool[T]) TryGet() (T, bool) {
	n := len(p.items)
	for scanned := 0; scanned < n; scanned++ {
		i := p.seek
		if !p.alive[i] {
			p.alive[i] = true
			p.live++
			p.stats.acquired++
			p.items[i].OnGet()
			if p.obs != nil {
				p.obs.ObserveAcquire(p.live, n)
			}
			return p.items[i], true
		}
		p.seek++
		if p.seek >= n {
			p.seek = 0
		}
	}

	p.stats.exhausted++
	if p.obs != nil {
		p.obs.ObserveExhaustion()
	}
	p.log.Debug("pool exhausted",
		zap.String("pool", p.name),
		zap.Int("capacity", n))
	var zero T
	return zero, false
}

// Release returns an element to the pool: its slot is marked dead, its
// OnRelease hook runs, and the scan cursor moves onto the freed slot so the
// next acquisition reuses it.
//
// Releasing an element the pool does not own, or one whose slot is already
// dead, is a no-op: Release reports false and the live count is untouched.
// A double release therefore never corrupts the count.
func (p *Pool[T]) Release(item T) bool {
	i, ok := p.slotOf(item)
	if !ok || !p.alive[i] {
		return false
	}

	p.alive[i] = false
	p.live--
	p.stats.released++
	p.seek = i
	p.items[i].OnRelease()
	if p.obs != nil {
		p.obs.ObserveRelease(p.live)
	}
	return true
}

// Contains reports whether some currently-alive slot holds the given
// element identity. It uses the same lookup strategy as Release.
func (p *Pool[T]) Contains(item T) bool {
	i, ok := p.slotOf(item)
	return ok && p.alive[i]
}

// Clear releases every alive slot, invoking OnRelease on each exactly once,
// and drives the live count to zero. Elements are not destroyed; they stay
// resident and reusable by subsequent acquisitions. The scan cursor resets
// to slot 0. Clear returns the number of slots it released.
func (p *Pool[T]) Clear() int {
	released := 0
	for i := range p.items {
		if !p.alive[i] {
			continue
		}
		p.alive[i] = false
		p.live--
		p.stats.released++
		p.items[i].OnRelease()
		released++
	}
	p.seek = 0
	if released > 0 {
		p.stats.cleared++
		if p.obs != nil {
			p.obs.ObserveRelease(p.live)
		}
	}
	return released
}

// Count returns the number of currently-alive slots.
func (p *Pool[T]) Count() int {
	return p.live
}

// Capacity returns the fixed slot count chosen at construction.
func (p *Pool[T]) Capacity() int {
	return len(p.items)
}

// Alive returns a lazy sequence of the currently-alive elements in
// ascending slot order. The sequence is finite and restartable: ranging
// over it again rescans from slot 0. It reflects live state at iteration
// time; mutating the pool mid-iteration is undefined behavior, consistent
// with the single-threaded model.
func (p *Pool[T]) Alive() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range p.items {
			if p.alive[i] && !yield(p.items[i]) {
				return
			}
		}
	}
}

// Insert is not supported: every slot is permanently bound to the element
// the factory constructed for it, and admitting an externally-constructed
// element would break that invariant. It always returns an unsupported
// error.
func (p *Pool[T]) Insert(item T) error {
	return errors.New(errors.ErrorTypeUnsupported, "fixed pool slots cannot accept external elements").
		WithDetail("pool", p.name)
}

// CopyTo is not supported: bulk copy-out of slot contents is outside the
// pool contract. Use Alive to enumerate the live elements instead.
func (p *Pool[T]) CopyTo(dst []T) error {
	return errors.New(errors.ErrorTypeUnsupported, "fixed pool does not support bulk copy-out").
		WithDetail("pool", p.name)
}

// slotOf locates the slot holding the given element identity, via the
// reverse index when present and a linear scan otherwise.
func (p *Pool[T]) slotOf(item T) (int, bool) {
	if p.index != nil {
		i, ok := p.index[item]
		return i, ok
	}
	for i := range p.items {
		if p.items[i] == item {
			return i, true
		}
	}
	return 0, false
}

// IsExhausted reports whether err is a pool-exhaustion error returned by
// Get.
func IsExhausted(err error) bool {
	return errors.IsType(err, errors.ErrorTypeExhausted)
}
