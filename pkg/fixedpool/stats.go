package fixedpool

import (
	gojson "github.com/goccy/go-json"
)

// Stats is a point-in-time snapshot of pool counters, useful for leak
// hunting and capacity tuning. Counters are plain integers updated inline
// with pool operations; like the pool itself they are not synchronized.
type Stats struct {
	// Name is the pool label set with WithName.
	Name string `json:"name"`
	// Capacity is the fixed slot count.
	Capacity int `json:"capacity"`
	// Live is the number of currently-alive slots.
	Live int `json:"live"`
	// Indexed reports whether the O(1) release strategy is active.
	Indexed bool `json:"indexed"`
	// Acquired is the total number of successful acquisitions.
	Acquired uint64 `json:"acquired"`
	// Released is the total number of slot releases, including those
	// performed by Clear.
	Released uint64 `json:"released"`
	// Exhausted is the number of acquisitions that found no dead slot.
	Exhausted uint64 `json:"exhausted"`
	// Cleared is the number of Clear calls that released at least one
	// slot.
	Cleared uint64 `json:"cleared"`
}

// Stats returns the current counter snapshot.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Name:      p.name,
		Capacity:  len(p.items),
		Live:      p.live,
		Indexed:   p.index != nil,
		Acquired:  p.stats.acquired,
		Released:  p.stats.released,
		Exhausted: p.stats.exhausted,
		Cleared:   p.stats.cleared,
	}
}

// JSON encodes the snapshot for debug dumps and observability endpoints.
func (s Stats) JSON() ([]byte, error) {
	return gojson.Marshal(s)
}
