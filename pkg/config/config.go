// Package config provides configuration for fixed-capacity pools.
// It defines a single PoolConfig structure so that services embedding many
// pools configure them all the same way, and a loader supporting YAML and
// JSON files with environment variable substitution.
//
// Example usage:
//
//	cfg := config.NewPoolConfig("bullets", 256)
//	cfg.IndexedRelease = true
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"github.com/nothke/Pool/pkg/errors"
)

// PoolConfig configures one fixed-capacity pool instance.
type PoolConfig struct {
	// Name identifies the pool instance in logs, errors, and metrics
	Name string `yaml:"name" json:"name"`

	// Capacity is the fixed slot count. It must be positive; the pool
	// rejects rather than clamps invalid values.
	Capacity int `yaml:"capacity" json:"capacity"`

	// IndexedRelease selects the O(1) reverse-index release strategy
	// instead of the default O(capacity) linear scan
	IndexedRelease bool `yaml:"indexed_release" json:"indexed_release"`

	// Observability settings for monitoring and debugging
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`
}

// ObservabilityConfig controls pool instrumentation.
type ObservabilityConfig struct {
	// EnableMetrics wires the pool to the Prometheus collectors in
	// pkg/metrics
	EnableMetrics bool `yaml:"enable_metrics" json:"enable_metrics"`

	// LogLevel sets the logger level for pool lifecycle events
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// NewPoolConfig creates a PoolConfig with sensible defaults for the given
// pool name and capacity.
func NewPoolConfig(name string, capacity int) *PoolConfig {
	return &PoolConfig{
		Name:     name,
		Capacity: capacity,
		Observability: ObservabilityConfig{
			LogLevel: "info",
		},
	}
}

// Validate checks the configuration for correctness.
func (c *PoolConfig) Validate() error {
	if c.Name == "" {
		return errors.New(errors.ErrorTypeValidation, "pool name is required")
	}
	if c.Capacity <= 0 {
		return errors.New(errors.ErrorTypeValidation, "pool capacity must be positive").
			WithDetail("name", c.Name).
			WithDetail("capacity", c.Capacity)
	}
	return nil
}
