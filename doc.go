// Package objectpool is a generic object-reuse pool for Go. It keeps a bounded
// reservoir of idle instances, recycles returned instances in FIFO order, and
// runs lifecycle hooks right before an instance is handed out and right before
// it is taken back.
//
// # Packages
//
//   - pkg/pool: ObjectPool[T], Config, Capacity and the lifecycle hook interfaces
//   - pkg/config: pool settings loaded from YAML, JSON or viper, served as providers
//   - pkg/logger: process-wide zap logger
//   - pkg/poolerrors: structured errors with type, details and stack
//   - cmd/objectpool: CLI to check config files and simulate pool churn
//
// # Quick Start
//
//	import (
//	    "github.com/ajitpratap0/objectpool/pkg/config"
//	    "github.com/ajitpratap0/objectpool/pkg/pool"
//	)
//
//	reg, err := config.LoadFile("pools.yaml")
//	if err != nil {
//	    return err
//	}
//
//	frames, err := pool.New[*Frame](config.Provider[*Frame](reg, "frame"), newFrame)
//	if err != nil {
//	    return err
//	}
//
//	f, err := frames.Get()
//	if err != nil {
//	    return err
//	}
//	defer frames.Return(f)
//
// # Lifecycle Hooks
//
// A pooled type either implements pool.Pooled, implements only one of
// pool.PreGetter and pool.PreReturner, or declares nothing and optionally gets
// hooks from the caller via pool.WithPreGet and pool.WithPreReturn. The choice
// is made once per type.
//
// # Thread Safety
//
// ObjectPool does no locking. Give each goroutine its own pool, as
// `objectpool simulate` does, or wrap a shared pool in a mutex.
//
// # CLI
//
//	go build -o bin/objectpool ./cmd/objectpool
//	./bin/objectpool check --config pools.yaml
//	./bin/objectpool simulate --config pools.yaml --pool frame --ops 100000
package objectpool
