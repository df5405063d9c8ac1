// Package logger owns the process-wide zap logger used across the API.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init configures the global logger. ENV=production selects the JSON
// encoder the deployment's log pipeline expects; anything else gets a
// console encoder for local dashboard development.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		if env == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}

		if err != nil {
			// Never fail startup over logging.
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development
// logger on first use so services and tests can log without setup.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes any buffered log entries. Deferred in main.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
