package pool

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/ajitpratap0/objectpool/pkg/poolerrors"
)

// Pooled is implemented by types that manage their own pool lifecycle.
// PreGetFromPool runs right before an instance is handed out by Get and
// PreReturnToPool right before a returned instance re-enters the reservoir.
type Pooled interface {
	PreGetFromPool() error
	PreReturnToPool() error
}

// PreGetter is implemented by types that only need the pre-get hook.
type PreGetter interface {
	PreGetFromPool() error
}

// PreReturner is implemented by types that only need the pre-return hook.
type PreReturner interface {
	PreReturnToPool() error
}

// DispatchMode describes how a pool invokes the lifecycle hooks of its type.
type DispatchMode int

const (
	// DispatchNone means no hook exists; hook calls are no-ops.
	DispatchNone DispatchMode = iota
	// DispatchCapability means the type implements Pooled.
	DispatchCapability
	// DispatchDiscovered means hooks were found individually, either as
	// PreGetter/PreReturner methods or as caller-supplied functions.
	DispatchDiscovered
)

func (m DispatchMode) String() string {
	switch m {
	case DispatchCapability:
		return "capability"
	case DispatchDiscovered:
		return "discovered"
	default:
		return "none"
	}
}

// ErrAmbiguousHook is the cause of the construction error returned when a
// hook kind has more than one candidate implementation.
var ErrAmbiguousHook = errors.New("ambiguous lifecycle hook")

var (
	pooledType      = reflect.TypeOf((*Pooled)(nil)).Elem()
	preGetterType   = reflect.TypeOf((*PreGetter)(nil)).Elem()
	preReturnerType = reflect.TypeOf((*PreReturner)(nil)).Elem()
)

// typeHooks is the method-based part of dispatch resolution. It depends only
// on the type, so it is computed once per type and cached in typeHookCache.
type typeHooks struct {
	mode      DispatchMode
	preGet    bool
	preReturn bool
}

// typeHookCache maps reflect.Type to typeHooks. Entries are never invalidated.
var typeHookCache sync.Map

func resolveTypeHooks[T any]() typeHooks {
	t := reflect.TypeFor[T]()
	if cached, ok := typeHookCache.Load(t); ok {
		return cached.(typeHooks)
	}

	var h typeHooks
	if t.Implements(pooledType) {
		h.mode = DispatchCapability
	} else {
		h.preGet = t.Implements(preGetterType)
		h.preReturn = t.Implements(preReturnerType)
		if h.preGet || h.preReturn {
			h.mode = DispatchDiscovered
		}
	}

	actual, _ := typeHookCache.LoadOrStore(t, h)
	return actual.(typeHooks)
}

// dispatcher holds the resolved hook calls of one pool. Both functions are
// always set; missing hooks are no-ops.
type dispatcher[T any] struct {
	mode      DispatchMode
	preGet    func(T) error
	preReturn func(T) error
}

func noopHook[T any](T) error { return nil }

// resolveDispatch combines the cached type-level resolution with the hooks a
// caller passed through options. Two candidates for the same hook kind are
// rejected rather than silently picking one.
func resolveDispatch[T any](preGet, preReturn func(T) error) (dispatcher[T], error) {
	th := resolveTypeHooks[T]()
	d := dispatcher[T]{
		mode:      th.mode,
		preGet:    noopHook[T],
		preReturn: noopHook[T],
	}

	if th.mode == DispatchCapability {
		switch {
		case preGet != nil:
			return d, ambiguousHook[T]("pre-get", "type implements Pooled and a pre-get function was supplied")
		case preReturn != nil:
			return d, ambiguousHook[T]("pre-return", "type implements Pooled and a pre-return function was supplied")
		}
		d.preGet = func(v T) error { return any(v).(Pooled).PreGetFromPool() }
		d.preReturn = func(v T) error { return any(v).(Pooled).PreReturnToPool() }
		return d, nil
	}

	switch {
	case th.preGet && preGet != nil:
		return d, ambiguousHook[T]("pre-get", "type implements PreGetter and a pre-get function was supplied")
	case th.preGet:
		d.preGet = func(v T) error { return any(v).(PreGetter).PreGetFromPool() }
	case preGet != nil:
		d.preGet = preGet
	}

	switch {
	case th.preReturn && preReturn != nil:
		return d, ambiguousHook[T]("pre-return", "type implements PreReturner and a pre-return function was supplied")
	case th.preReturn:
		d.preReturn = func(v T) error { return any(v).(PreReturner).PreReturnToPool() }
	case preReturn != nil:
		d.preReturn = preReturn
	}

	if th.preGet || th.preReturn || preGet != nil || preReturn != nil {
		d.mode = DispatchDiscovered
	}
	return d, nil
}

func ambiguousHook[T any](hook, reason string) error {
	return poolerrors.Wrap(ErrAmbiguousHook, poolerrors.ErrorTypeConfig, reason).
		WithDetail("type", reflect.TypeFor[T]().String()).
		WithDetail("hook", hook)
}

// TypeName returns the default pool name for T: the lower-cased type name
// with any pointer indirection removed, e.g. "frame" for *Frame.
func TypeName[T any]() string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	return strings.ToLower(name)
}

// defaultFactory builds T's default instance: a freshly allocated value when T
// is a pointer type, otherwise T's zero value.
func defaultFactory[T any]() func() T {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		elem := t.Elem()
		return func() T {
			return reflect.New(elem).Convert(t).Interface().(T)
		}
	}
	return func() T {
		var zero T
		return zero
	}
}
