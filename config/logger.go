package config

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the process-wide zap logger. DEBUG=true switches to the development encoder.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		var err error
		if App().Debug {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the process logger (tests use zap.NewNop or an observer core).
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})
	logger = l
}
