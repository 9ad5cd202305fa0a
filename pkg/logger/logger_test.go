package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		_, err := newLogger(Config{Level: "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("defaults to json encoding", func(t *testing.T) {
		l, err := newLogger(Config{Level: "debug"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("development console", func(t *testing.T) {
		l, err := newLogger(Config{Level: "warn", Development: true, Encoding: "console", OutputPaths: []string{"stderr"}})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	})
}

// observe swaps the global logger for an observer until the test ends.
func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	Get()
	core, logs := observer.New(level)
	prev := globalLogger
	globalLogger = zap.New(core)
	t.Cleanup(func() { globalLogger = prev })
	return logs
}

func TestWithContext(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	ctx := context.WithValue(context.Background(), PoolKey, "frame")
	ctx = context.WithValue(ctx, WorkerKey, 3)
	WithContext(ctx).Info("pool ready")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "frame", fields["pool"])
	assert.Equal(t, int64(3), fields["worker"])
}

func TestLevelHelpers(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Debug("hidden")
	Info("loaded", zap.String("path", "pools.yaml"))
	Warn("unknown pool", zap.String("pool", "frame"))
	With(zap.String("pool", "frame")).Info("child")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "pools.yaml", entries[0].ContextMap()["path"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "child", entries[2].Message)
	assert.Equal(t, "frame", entries[2].ContextMap()["pool"])
}

func TestGet_ReturnsSameLogger(t *testing.T) {
	assert.NotNil(t, Get())
	assert.Same(t, Get(), Get())
}
