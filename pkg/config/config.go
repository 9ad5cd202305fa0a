package config

import (
	"sort"
	"strings"

	"github.com/ajitpratap0/objectpool/pkg/pool"
	"github.com/ajitpratap0/objectpool/pkg/poolerrors"
)

// PoolSettings is the on-disk form of a pool's configuration.
type PoolSettings struct {
	// PrecacheCount is the number of instances built when the pool is created
	PrecacheCount int `yaml:"precache_count" json:"precache_count" mapstructure:"precache_count"`
	// MaxAliveCount bounds the idle instances kept; zero or negative means unbounded
	MaxAliveCount int `yaml:"max_alive_count" json:"max_alive_count" mapstructure:"max_alive_count"`
}

// PoolConfig converts the settings into a pool.Config.
func (s PoolSettings) PoolConfig() pool.Config {
	return pool.Config{
		PrecacheCount: s.PrecacheCount,
		MaxAlive:      pool.CapacityFromCount(s.MaxAliveCount),
	}
}

// File is the root of a pool configuration file.
type File struct {
	// Defaults apply to pools without their own entry
	Defaults PoolSettings `yaml:"defaults" json:"defaults" mapstructure:"defaults"`
	// Pools holds per-pool settings keyed by pool name
	Pools map[string]PoolSettings `yaml:"pools" json:"pools" mapstructure:"pools"`
}

// Registry resolves pool names to validated configurations.
// It is read-only after construction and safe for concurrent use.
type Registry struct {
	defaults pool.Config
	pools    map[string]pool.Config
}

// NewRegistry validates every entry of f and builds a Registry from it.
// Pool names are case-insensitive; two entries that differ only in case are
// rejected.
func NewRegistry(f File) (*Registry, error) {
	defaults := f.Defaults.PoolConfig()
	if err := defaults.Validate(); err != nil {
		return nil, poolerrors.Wrap(err, poolerrors.ErrorTypeConfig, "invalid default pool settings")
	}

	r := &Registry{
		defaults: defaults,
		pools:    make(map[string]pool.Config, len(f.Pools)),
	}
	seen := make(map[string]string, len(f.Pools))
	for name, settings := range f.Pools {
		key := strings.ToLower(name)
		if other, ok := seen[key]; ok {
			return nil, poolerrors.New(poolerrors.ErrorTypeConfig, "duplicate pool name").
				WithDetail("pool", name).
				WithDetail("conflicts_with", other)
		}
		seen[key] = name

		cfg := settings.PoolConfig()
		if err := cfg.Validate(); err != nil {
			return nil, poolerrors.Wrap(err, poolerrors.ErrorTypeConfig, "invalid pool settings").
				WithDetail("pool", name)
		}
		r.pools[key] = cfg
	}
	return r, nil
}

// Lookup returns the configuration for name, falling back to the defaults.
func (r *Registry) Lookup(name string) pool.Config {
	if cfg, ok := r.pools[strings.ToLower(name)]; ok {
		return cfg
	}
	return r.defaults
}

// Has reports whether name has its own entry.
func (r *Registry) Has(name string) bool {
	_, ok := r.pools[strings.ToLower(name)]
	return ok
}

// Defaults returns the configuration used for unknown pool names.
func (r *Registry) Defaults() pool.Config {
	return r.defaults
}

// Names returns the configured pool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.pools))
	for name := range r.pools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// File converts the registry back to its on-disk form. Names come out
// lower-cased and unbounded capacities as a zero max_alive_count.
func (r *Registry) File() File {
	f := File{
		Defaults: settingsFor(r.defaults),
		Pools:    make(map[string]PoolSettings, len(r.pools)),
	}
	for name, cfg := range r.pools {
		f.Pools[name] = settingsFor(cfg)
	}
	return f
}

func settingsFor(cfg pool.Config) PoolSettings {
	return PoolSettings{PrecacheCount: cfg.PrecacheCount, MaxAliveCount: cfg.MaxAlive.Count()}
}

// Provider returns a pool.ConfigProvider that looks up name in r. An empty
// name selects pool.TypeName[T]().
//
// Example:
//
//	reg, err := config.LoadFile("pools.yaml")
//	if err != nil {
//		return err
//	}
//	frames, err := pool.New[*Frame](config.Provider[*Frame](reg, ""), newFrame)
func Provider[T any](r *Registry, name string) pool.ConfigProvider[T] {
	if name == "" {
		name = pool.TypeName[T]()
	}
	return pool.ConfigFunc[T](func() pool.Config {
		return r.Lookup(name)
	})
}
