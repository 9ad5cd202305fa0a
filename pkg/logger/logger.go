// Package logger provides the process-wide structured logger
package logger

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	once         sync.Once
)

// contextKey is the type for context keys
type contextKey string

const (
	// PoolKey is the context key for the pool name
	PoolKey contextKey = "pool"
	// WorkerKey is the context key for the worker ID
	WorkerKey contextKey = "worker"
)

// Config represents logger configuration
type Config struct {
	Level       string
	Development bool
	Encoding    string // json or console
	OutputPaths []string
}

// DefaultConfig is used when Get runs before Init.
var DefaultConfig = Config{Level: "info", Encoding: "json"}

// Init builds the global logger. Only the first call has any effect; when it
// fails the global logger falls back to zap's production logger and the
// error is returned.
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		var l *zap.Logger
		if l, err = newLogger(cfg); err != nil {
			l = fallback()
		}
		globalLogger = l
	})
	return err
}

func fallback() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// newLogger creates a new zap logger
func newLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.FunctionKey = zapcore.OmitKey
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	if cfg.Development {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Development,
		Encoding:         cfg.Encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      cfg.OutputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}
	if zapCfg.Encoding == "" {
		zapCfg.Encoding = "json"
	}
	if len(zapCfg.OutputPaths) == 0 {
		// stderr keeps log lines apart from command output on stdout
		zapCfg.OutputPaths = []string{"stderr"}
	}

	opts := []zap.Option{}
	if cfg.Development {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	logger, err := zapCfg.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Get returns the global logger, building it from DefaultConfig if Init has
// not run yet. Safe for concurrent use.
func Get() *zap.Logger {
	_ = Init(DefaultConfig)
	return globalLogger
}

// WithContext returns the global logger annotated with the pool name and
// worker ID carried by ctx.
func WithContext(ctx context.Context) *zap.Logger {
	logger := Get()

	if name, ok := ctx.Value(PoolKey).(string); ok {
		logger = logger.With(zap.String("pool", name))
	}

	if worker, ok := ctx.Value(WorkerKey).(int); ok {
		logger = logger.With(zap.Int("worker", worker))
	}

	return logger
}

// With returns a child of the global logger with fields attached.
func With(fields ...zap.Field) *zap.Logger {
	return Get().With(fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}
