package config

import (
	"github.com/MonkyMars/gecho"
)

var logger *gecho.Logger

// InitializeLogger builds the process-wide logger. The level follows the
// environment: debug in development, info in production.
func InitializeLogger() *gecho.Logger {
	level := gecho.ParseLogLevel(GetLogLevel())
	logger = gecho.NewLogger(gecho.NewConfig(
		gecho.WithShowCaller(!IsProduction()),
		gecho.WithLogLevel(level),
	))
	return logger
}

// GetLogger returns the shared logger, initializing it on first use.
func GetLogger() *gecho.Logger {
	if logger == nil {
		return InitializeLogger()
	}
	return logger
}
