package pool

import (
	"strconv"

	"github.com/ajitpratap0/objectpool/pkg/poolerrors"
)

// Capacity is the upper bound on the number of idle instances a pool keeps.
// It is either Bounded(n) or Unbounded(); the zero value is Unbounded.
type Capacity struct {
	limit   int
	bounded bool
}

// Bounded returns a capacity that keeps at most n idle instances.
// n must be positive; Config.Validate rejects anything else.
func Bounded(n int) Capacity {
	return Capacity{limit: n, bounded: true}
}

// Unbounded returns a capacity that never discards returned instances.
func Unbounded() Capacity {
	return Capacity{}
}

// CapacityFromCount converts the integer "max alive count" used by config
// files: a positive n is Bounded(n), zero or negative is Unbounded().
func CapacityFromCount(n int) Capacity {
	if n <= 0 {
		return Unbounded()
	}
	return Bounded(n)
}

// IsBounded reports whether the capacity has a limit.
func (c Capacity) IsBounded() bool {
	return c.bounded
}

// Limit returns the bound and true, or 0 and false for an unbounded capacity.
func (c Capacity) Limit() (int, bool) {
	return c.limit, c.bounded
}

// Count is the inverse of CapacityFromCount: the limit, or 0 when unbounded.
func (c Capacity) Count() int {
	if !c.bounded {
		return 0
	}
	return c.limit
}

func (c Capacity) String() string {
	if !c.bounded {
		return "unbounded"
	}
	return strconv.Itoa(c.limit)
}

// Config holds the settings a pool reads once at construction.
// A pool keeps its own copy, so later changes to a Config value have no
// effect on pools already built from it.
type Config struct {
	// PrecacheCount is the number of instances constructed eagerly.
	PrecacheCount int
	// MaxAlive bounds the number of idle instances kept for reuse.
	MaxAlive Capacity
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	if c.PrecacheCount < 0 {
		return poolerrors.New(poolerrors.ErrorTypeValidation, "precache count must not be negative").
			WithDetail("precache_count", c.PrecacheCount)
	}
	if limit, ok := c.MaxAlive.Limit(); ok {
		if limit <= 0 {
			return poolerrors.New(poolerrors.ErrorTypeValidation, "bounded capacity must be positive").
				WithDetail("max_alive_count", limit)
		}
	}
	return nil
}

// ConfigProvider produces the Config for pools of T. A pool consults its
// provider exactly once, during New.
type ConfigProvider[T any] interface {
	PoolConfig() Config
}

// StaticConfig is a ConfigProvider that always returns the same settings.
type StaticConfig[T any] Config

// PoolConfig implements ConfigProvider.
func (s StaticConfig[T]) PoolConfig() Config {
	return Config(s)
}

// ConfigFunc adapts a function to the ConfigProvider interface.
type ConfigFunc[T any] func() Config

// PoolConfig implements ConfigProvider.
func (f ConfigFunc[T]) PoolConfig() Config {
	return f()
}
