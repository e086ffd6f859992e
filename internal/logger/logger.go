// Package logger aliases the go-utils logging surface the module uses, so
// the rest of the codebase imports one internal package instead of
// spelling the upstream path everywhere.
package logger

import (
	"github.com/xraph/go-utils/log"
	"go.uber.org/zap/zapcore"
)

// Logger represents the logging interface.
type Logger = log.Logger

// SugarLogger provides a more flexible API.
type SugarLogger = log.SugarLogger

// Field represents a structured log field.
type Field = log.Field

// LoggingConfig represents logging configuration.
type LoggingConfig = log.LoggingConfig

// TestLogger provides a test logger implementation.
type TestLogger = log.TestLogger

type LogLevel = log.LogLevel

const (
	LevelDebug = log.LevelDebug
	LevelInfo  = log.LevelInfo
	LevelWarn  = log.LevelWarn
	LevelError = log.LevelError
	LevelFatal = log.LevelFatal
)

// NewLogger creates a new logger with the given configuration.
func NewLogger(config LoggingConfig) Logger {
	return log.NewLogger(config)
}

// NewDevelopmentLogger creates a development logger with enhanced colors.
func NewDevelopmentLogger() Logger {
	return log.NewDevelopmentLogger()
}

// NewDevelopmentLoggerWithLevel creates a development logger with specified level.
func NewDevelopmentLoggerWithLevel(level zapcore.Level) Logger {
	return log.NewDevelopmentLoggerWithLevel(level)
}

// NewProductionLogger creates a production logger.
func NewProductionLogger() Logger {
	return log.NewProductionLogger()
}

// NewNoopLogger creates a logger that does nothing.
func NewNoopLogger() Logger {
	return log.NewNoopLogger()
}
