package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/objectpool/pkg/config"
	"github.com/ajitpratap0/objectpool/pkg/pool"
	"github.com/ajitpratap0/objectpool/pkg/poolerrors"
)

func newTestRegistry(t *testing.T, settings config.PoolSettings) *config.Registry {
	t.Helper()
	reg, err := config.NewRegistry(config.File{
		Pools: map[string]config.PoolSettings{"frame": settings},
	})
	require.NoError(t, err)
	return reg
}

func TestRunSimulation_ReusesFrames(t *testing.T) {
	reg := newTestRegistry(t, config.PoolSettings{PrecacheCount: 4, MaxAliveCount: 8})

	summary, err := runSimulation(context.Background(), reg, simulateOptions{
		poolName: "frame",
		ops:      1000,
		workers:  3,
		batch:    4,
		order:    "fifo",
	})
	require.NoError(t, err)

	require.Len(t, summary.Workers, 3)
	assert.Equal(t, 3000, summary.Gets)
	assert.Equal(t, pool.DispatchCapability, summary.Dispatch)
	for _, w := range summary.Workers {
		// The batch never exceeds the precached frames, so nothing else is built.
		assert.Equal(t, 4, w.Constructed)
		assert.Equal(t, 4, w.Distinct)
		assert.Equal(t, 4, w.Idle)
	}
	assert.Equal(t, 12, summary.Constructed)
	assert.InDelta(t, 0.996, summary.ReuseRatio(), 0.001)
}

func TestRunSimulation_BoundedPoolDiscards(t *testing.T) {
	reg := newTestRegistry(t, config.PoolSettings{MaxAliveCount: 2})

	summary, err := runSimulation(context.Background(), reg, simulateOptions{
		poolName: "frame",
		ops:      30,
		workers:  1,
		batch:    5,
		order:    "lifo",
	})
	require.NoError(t, err)

	w := summary.Workers[0]
	assert.Equal(t, 30, w.Gets)
	assert.Equal(t, 2, w.Idle)
	// Every round reuses the two kept frames and builds three new ones.
	assert.Equal(t, 5+5*3, w.Constructed)
}

func TestRunSimulation_InvalidOptions(t *testing.T) {
	reg := newTestRegistry(t, config.PoolSettings{})

	_, err := runSimulation(context.Background(), reg, simulateOptions{poolName: "frame", ops: 1, workers: 0, batch: 1})
	assert.Error(t, err)

	_, err = runSimulation(context.Background(), reg, simulateOptions{poolName: "frame", ops: 1, workers: 1, batch: 0})
	assert.Error(t, err)

	_, err = runSimulation(context.Background(), reg, simulateOptions{poolName: "frame", ops: 1, workers: 1, batch: 1, order: "random"})
	assert.Error(t, err)
}

func TestLoadRegistry_Defaults(t *testing.T) {
	reg, err := loadRegistry("")
	require.NoError(t, err)
	assert.Empty(t, reg.Names())
	assert.False(t, reg.Lookup("frame").MaxAlive.IsBounded())

	_, err = loadRegistry("/nonexistent/pools.yaml")
	assert.True(t, poolerrors.IsType(err, poolerrors.ErrorTypeFile))
}

func TestPrintRegistry(t *testing.T) {
	reg := newTestRegistry(t, config.PoolSettings{PrecacheCount: 2, MaxAliveCount: 16})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	printRegistry(cmd, reg)

	assert.Contains(t, out.String(), "(defaults)")
	assert.Regexp(t, `frame\s+2\s+16`, out.String())
	assert.Regexp(t, `\(defaults\)\s+0\s+unbounded`, out.String())
}
