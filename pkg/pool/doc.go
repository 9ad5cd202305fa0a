// Package pool implements a generic object-reuse pool. It hands out instances
// of a type, recycles returned instances, and runs lifecycle hooks around
// acquisition and release, cutting allocation churn for objects that are
// created and thrown away at a high rate.
//
// # Architecture
//
// An ObjectPool[T] owns a reservoir of idle instances. Its settings come from
// a ConfigProvider, read once at construction:
//
//   - PrecacheCount instances are built eagerly by New
//   - MaxAlive is Bounded(n) or Unbounded(); a bounded pool silently drops
//     returned instances once n are idle
//
// PrecacheCount may exceed n. The surplus is served by Get as usual, and
// Return keeps dropping instances until fewer than n are idle.
//
// Get reuses the earliest returned instance (FIFO, or LIFO with WithOrder)
// and falls back to the factory when the reservoir is empty.
//
// # Lifecycle Hooks
//
// How hooks are invoked is decided once per type and cached:
//
//   - Capability: T implements Pooled, both hooks go through the interface
//   - Discovered: T implements PreGetter and/or PreReturner, or the caller
//     passed WithPreGet/WithPreReturn; each hook is found independently and
//     a missing one is a no-op
//   - None: no hook at all, both calls are no-ops
//
// Declaring the same hook twice, for example a PreGetFromPool method plus a
// WithPreGet option, makes New fail with ErrAmbiguousHook.
//
// Hook errors are returned to the caller unchanged. An instance whose pre-get
// hook failed is still handed to the caller; an instance whose pre-return hook
// failed is not kept.
//
// # Usage Patterns
//
//	type Frame struct {
//		buf []byte
//	}
//
//	func (f *Frame) PreGetFromPool() error   { return nil }
//	func (f *Frame) PreReturnToPool() error  { f.buf = f.buf[:0]; return nil }
//
//	frames := pool.MustNew[*Frame](
//		pool.StaticConfig[*Frame]{PrecacheCount: 8, MaxAlive: pool.Bounded(64)},
//		func() *Frame { return &Frame{buf: make([]byte, 0, 4096)} },
//	)
//
//	f, err := frames.Get()
//	if err != nil {
//		return err
//	}
//	defer frames.Return(f)
//
// # Thread Safety
//
// An ObjectPool performs no locking. Use one pool per goroutine, or protect a
// shared pool with your own mutex. The per-type dispatch cache is safe for
// concurrent pool construction.
package pool
