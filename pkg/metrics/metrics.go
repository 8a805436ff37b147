// Package metrics provides Prometheus instrumentation for fixed-capacity
// pools. It exposes counters for acquisitions, releases, and exhaustions,
// and gauges for live and total slots, all labeled by pool name.
//
// # Basic Usage
//
//	collector := metrics.NewCollector("bullets")
//
//	pool, err := fixedpool.New(256, newBullet,
//	    fixedpool.WithObserver[*Bullet](collector),
//	)
//
// Metric recording happens synchronously on the pool's own call path, so
// the collector does only constant-time label lookups and atomic updates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pool metrics, labeled by pool name.
var (
	// Acquisitions counts successful slot acquisitions.
	Acquisitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixedpool_acquisitions_total",
			Help: "Total number of successful pool acquisitions",
		},
		[]string{"pool"},
	)

	// Releases counts slot releases, including those performed by Clear.
	Releases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixedpool_releases_total",
			Help: "Total number of pool slot releases",
		},
		[]string{"pool"},
	)

	// Exhaustions counts acquisitions that found every slot alive.
	Exhaustions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixedpool_exhaustions_total",
			Help: "Total number of acquisitions rejected because the pool was full",
		},
		[]string{"pool"},
	)

	// LiveSlots tracks the number of currently-alive slots.
	LiveSlots = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fixedpool_live_slots",
			Help: "Number of currently alive pool slots",
		},
		[]string{"pool"},
	)

	// CapacitySlots reports the fixed capacity of each pool.
	CapacitySlots = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fixedpool_capacity_slots",
			Help: "Fixed slot capacity of each pool",
		},
		[]string{"pool"},
	)
)

// Collector records one pool's state transitions into the package metrics.
// It implements fixedpool.Observer. Each pool should get its own collector
// so metrics are attributed to the right name label.
type Collector struct {
	name string

	acquisitions prometheus.Counter
	releases     prometheus.Counter
	exhaustions  prometheus.Counter
	live         prometheus.Gauge
	capacity     prometheus.Gauge
}

// NewCollector creates a collector for the named pool. Label lookups are
// resolved once here rather than per observation.
func NewCollector(name string) *Collector {
	return &Collector{
		name:         name,
		acquisitions: Acquisitions.WithLabelValues(name),
		releases:     Releases.WithLabelValues(name),
		exhaustions:  Exhaustions.WithLabelValues(name),
		live:         LiveSlots.WithLabelValues(name),
		capacity:     CapacitySlots.WithLabelValues(name),
	}
}

// Name returns the pool name this collector is bound to.
func (c *Collector) Name() string {
	return c.name
}

// ObserveAcquire records a dead-to-alive slot transition.
func (c *Collector) ObserveAcquire(live, capacity int) {
	c.acquisitions.Inc()
	c.live.Set(float64(live))
	c.capacity.Set(float64(capacity))
}

// ObserveRelease records alive-to-dead slot transitions.
func (c *Collector) ObserveRelease(live int) {
	c.releases.Inc()
	c.live.Set(float64(live))
}

// ObserveExhaustion records an acquisition that found no dead slot.
func (c *Collector) ObserveExhaustion() {
	c.exhaustions.Inc()
}
