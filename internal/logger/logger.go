// Package logger holds the process-wide zap logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the global logger once per process. "production" writes JSON
// with ISO8601 timestamps, "test" discards everything, and anything else
// gets the colored development console.
func Init(env string) {
	once.Do(func() {
		setBase(build(env))
	})
}

func build(env string) *zap.Logger {
	var (
		base *zap.Logger
		err  error
	)
	switch env {
	case "production":
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		base, err = cfg.Build()
	case "test":
		return zap.NewNop()
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		base, err = cfg.Build()
	}
	if err != nil {
		return zap.NewNop()
	}
	return base.With(zap.String("service", "folio"))
}

func setBase(base *zap.Logger) {
	mu.Lock()
	sugar = base.Sugar()
	mu.Unlock()
}

// Get returns the global logger, initializing a development one if needed.
func Get() *zap.SugaredLogger {
	mu.RLock()
	s := sugar
	mu.RUnlock()
	if s != nil {
		return s
	}
	Init("development")
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Named returns a child of the global logger tagged with component.
func Named(component string) *zap.SugaredLogger {
	return Get().Named(component)
}

// Replace swaps the global logger for base and returns a func restoring
// the previous one. Tests use it with zaptest/observer.
func Replace(base *zap.Logger) func() {
	prev := Get()
	setBase(base)
	return func() {
		mu.Lock()
		sugar = prev
		mu.Unlock()
	}
}

// Sync flushes buffered entries. Call before exit.
func Sync() {
	_ = Get().Sync()
}
