package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	concpool "github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/ajitpratap0/objectpool/pkg/config"
	"github.com/ajitpratap0/objectpool/pkg/logger"
	"github.com/ajitpratap0/objectpool/pkg/pool"
)

type simulateOptions struct {
	configFile string
	poolName   string
	ops        int
	workers    int
	batch      int
	order      string
}

type workerStats struct {
	Worker      int
	Dispatch    pool.DispatchMode
	Gets        int
	Constructed int
	Distinct    int
	Idle        int
}

type simulationSummary struct {
	Pool        string
	Dispatch    pool.DispatchMode
	Workers     []workerStats
	Gets        int
	Constructed int
}

// ReuseRatio is the share of gets served without constructing a frame.
func (s simulationSummary) ReuseRatio() float64 {
	if s.Gets == 0 {
		return 0
	}
	return float64(s.Gets-s.Constructed) / float64(s.Gets)
}

func parseOrder(s string) (pool.Order, error) {
	switch s {
	case "", "fifo":
		return pool.FIFO, nil
	case "lifo":
		return pool.LIFO, nil
	default:
		return pool.FIFO, fmt.Errorf("unknown order %q (expected fifo or lifo)", s)
	}
}

// runSimulation gives every worker a private pool. ObjectPool does no
// locking, so pools are never shared between goroutines.
func runSimulation(ctx context.Context, reg *config.Registry, opts simulateOptions) (simulationSummary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.workers <= 0 {
		return simulationSummary{}, fmt.Errorf("workers must be positive, got %d", opts.workers)
	}
	if opts.batch <= 0 {
		return simulationSummary{}, fmt.Errorf("batch must be positive, got %d", opts.batch)
	}
	order, err := parseOrder(opts.order)
	if err != nil {
		return simulationSummary{}, err
	}

	log := logger.With(zap.String("pool", opts.poolName))
	if !reg.Has(opts.poolName) {
		log.Warn("pool not configured, using defaults",
			zap.Stringer("max_alive", reg.Defaults().MaxAlive))
	}
	provider := config.Provider[*Frame](reg, opts.poolName)
	ctx = context.WithValue(ctx, logger.PoolKey, opts.poolName)

	workers := concpool.NewWithResults[workerStats]().WithErrors().WithMaxGoroutines(opts.workers)
	for i := 0; i < opts.workers; i++ {
		id := i
		workers.Go(func() (workerStats, error) {
			return runWorker(context.WithValue(ctx, logger.WorkerKey, id), id, provider, order, opts)
		})
	}
	stats, err := workers.Wait()
	if err != nil {
		return simulationSummary{}, err
	}

	summary := simulationSummary{
		Pool:    opts.poolName,
		Workers: stats,
	}
	for _, s := range stats {
		summary.Gets += s.Gets
		summary.Constructed += s.Constructed
		summary.Dispatch = s.Dispatch
	}

	log.Info("simulation finished",
		zap.Int("workers", len(stats)),
		zap.Int("gets", summary.Gets),
		zap.Int("constructed", summary.Constructed))

	return summary, nil
}

func runWorker(ctx context.Context, id int, provider pool.ConfigProvider[*Frame], order pool.Order, opts simulateOptions) (workerStats, error) {
	log := logger.WithContext(ctx)
	stats := workerStats{Worker: id}

	frames, err := pool.New[*Frame](provider, newFrameFactory(&stats.Constructed),
		pool.WithName[*Frame](opts.poolName),
		pool.WithOrder[*Frame](order),
		pool.WithLogger[*Frame](log),
	)
	if err != nil {
		return stats, err
	}
	stats.Dispatch = frames.Dispatch()

	seen := make(map[uuid.UUID]struct{})
	held := make([]*Frame, 0, opts.batch)
	for stats.Gets < opts.ops {
		held = held[:0]
		for i := 0; i < opts.batch && stats.Gets < opts.ops; i++ {
			f, err := frames.Get()
			if err != nil {
				return stats, err
			}
			f.Payload = append(f.Payload, byte(i))
			held = append(held, f)
			seen[f.ID] = struct{}{}
			stats.Gets++
		}
		for _, f := range held {
			if err := frames.Return(f); err != nil {
				return stats, err
			}
		}
	}

	stats.Distinct = len(seen)
	stats.Idle = frames.Len()
	log.Debug("worker finished",
		zap.Int("gets", stats.Gets),
		zap.Int("constructed", stats.Constructed),
		zap.Int("distinct", stats.Distinct),
		zap.Int("idle", stats.Idle))

	return stats, nil
}
