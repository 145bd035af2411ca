package typelist

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the library's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the library's logger. The resolver logs each slot
// resolution at debug level, which fires once per (list type, target type)
// pair. Call before any lookups; the logger is not synchronized.
func SetLogger(l *zap.Logger) {
	logger = l
	resolver.SetLogger(l)
}
