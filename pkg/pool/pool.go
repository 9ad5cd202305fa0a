package pool

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajitpratap0/objectpool/pkg/poolerrors"
)

// DefaultCapacityHint caps the initial reservoir allocation. Larger
// reservoirs grow on demand.
const DefaultCapacityHint = 1 << 10

// Order selects which idle instance Get reuses first.
type Order int

const (
	// FIFO reuses the instance that was returned earliest.
	FIFO Order = iota
	// LIFO reuses the instance that was returned most recently.
	LIFO
)

func (o Order) String() string {
	if o == LIFO {
		return "lifo"
	}
	return "fifo"
}

// ObjectPool keeps a reservoir of idle instances of T and runs T's lifecycle
// hooks around Get and Return.
//
// An ObjectPool is not safe for concurrent use. Give each goroutine its own
// pool or guard a shared one with a mutex.
type ObjectPool[T any] struct {
	name    string
	config  Config
	order   Order
	factory func() T
	storage *reservoir[T]
	hooks   dispatcher[T]
	logger  *zap.Logger
}

type options[T any] struct {
	name      string
	order     Order
	logger    *zap.Logger
	preGet    func(T) error
	preReturn func(T) error
}

// Option configures an ObjectPool.
type Option[T any] func(*options[T])

// WithName sets the pool name used in log fields. Defaults to TypeName[T]().
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) {
		o.name = name
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = logger
	}
}

// WithOrder sets the recycling order. Defaults to FIFO.
func WithOrder[T any](order Order) Option[T] {
	return func(o *options[T]) {
		o.order = order
	}
}

// WithPreGet supplies the pre-get hook for a type that does not implement
// PreGetter or Pooled itself.
func WithPreGet[T any](fn func(T) error) Option[T] {
	return func(o *options[T]) {
		o.preGet = fn
	}
}

// WithPreReturn supplies the pre-return hook for a type that does not
// implement PreReturner or Pooled itself.
func WithPreReturn[T any](fn func(T) error) Option[T] {
	return func(o *options[T]) {
		o.preReturn = fn
	}
}

// New creates a pool for T. The provider is consulted exactly once. factory
// constructs new instances; when nil, pointer types get a freshly allocated
// value and other types their zero value.
//
// PrecacheCount instances are constructed before New returns. No hook runs
// for them until they are handed out by Get.
//
// Example:
//
//	frames, err := pool.New[*Frame](
//	    pool.StaticConfig[*Frame]{PrecacheCount: 16, MaxAlive: pool.Bounded(128)},
//	    func() *Frame { return &Frame{buf: make([]byte, 0, 4096)} },
//	    pool.WithLogger[*Frame](logger),
//	)
func New[T any](provider ConfigProvider[T], factory func() T, opts ...Option[T]) (*ObjectPool[T], error) {
	o := options[T]{
		name:  TypeName[T](),
		order: FIFO,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	if provider == nil {
		return nil, poolerrors.New(poolerrors.ErrorTypeConfig, "config provider is required").
			WithDetail("pool", o.name)
	}
	cfg := provider.PoolConfig()
	if err := cfg.Validate(); err != nil {
		return nil, poolerrors.Wrap(err, poolerrors.ErrorTypeConfig, "invalid pool config").
			WithDetail("pool", o.name)
	}

	hooks, err := resolveDispatch[T](o.preGet, o.preReturn)
	if err != nil {
		return nil, err
	}

	if factory == nil {
		factory = defaultFactory[T]()
	}

	p := &ObjectPool[T]{
		name:    o.name,
		config:  cfg,
		order:   o.order,
		factory: factory,
		storage: newReservoir[T](o.order, capacityHint(cfg)),
		hooks:   hooks,
		logger:  o.logger.With(zap.String("pool", o.name)),
	}
	for i := 0; i < cfg.PrecacheCount; i++ {
		p.storage.put(factory())
	}

	p.logger.Debug("object pool created",
		zap.Int("precache_count", cfg.PrecacheCount),
		zap.Stringer("max_alive", cfg.MaxAlive),
		zap.Stringer("dispatch", hooks.mode),
		zap.Stringer("order", o.order))

	return p, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](provider ConfigProvider[T], factory func() T, opts ...Option[T]) *ObjectPool[T] {
	p, err := New[T](provider, factory, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// capacityHint sizes the reservoir for the bound, or for the precached
// instances when those outnumber it.
func capacityHint(cfg Config) int {
	hint := cfg.PrecacheCount
	if limit, ok := cfg.MaxAlive.Limit(); ok {
		hint = max(limit, cfg.PrecacheCount)
	}
	return min(hint, DefaultCapacityHint)
}

// Get removes an idle instance from the reservoir, or constructs one when the
// reservoir is empty, and runs the pre-get hook on it.
//
// A hook error is returned unchanged together with the instance. The instance
// has left the pool either way; the pool never puts it back on its own.
func (p *ObjectPool[T]) Get() (T, error) {
	obj, ok := p.storage.take()
	if !ok {
		obj = p.factory()
	}
	if err := p.hooks.preGet(obj); err != nil {
		return obj, err
	}
	return obj, nil
}

// Return hands obj back to the pool. When the reservoir is already at its
// bound, obj is dropped without running any hook and Return reports no error.
// Otherwise the pre-return hook runs first and obj is kept only if the hook
// succeeds; a hook error is returned unchanged.
//
// Return does not check that obj came from this pool.
func (p *ObjectPool[T]) Return(obj T) error {
	if limit, ok := p.config.MaxAlive.Limit(); ok && p.storage.Len() >= limit {
		if ce := p.logger.Check(zapcore.DebugLevel, "reservoir full, discarding instance"); ce != nil {
			ce.Write(zap.Int("max_alive", limit))
		}
		return nil
	}
	if err := p.hooks.preReturn(obj); err != nil {
		return err
	}
	p.storage.put(obj)
	return nil
}

// Len returns the number of idle instances in the reservoir.
func (p *ObjectPool[T]) Len() int {
	return p.storage.Len()
}

// Clear drops every idle instance. No hook runs for them.
func (p *ObjectPool[T]) Clear() {
	p.storage.Clear()
}

// Name returns the pool name.
func (p *ObjectPool[T]) Name() string {
	return p.name
}

// Config returns the settings the pool was built with.
func (p *ObjectPool[T]) Config() Config {
	return p.config
}

// Dispatch reports how the pool invokes T's lifecycle hooks.
func (p *ObjectPool[T]) Dispatch() DispatchMode {
	return p.hooks.mode
}

// Order returns the recycling order.
func (p *ObjectPool[T]) Order() Order {
	return p.order
}
