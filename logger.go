package sidenav

import "github.com/xraph/sidenav/internal/logger"

// Re-export logger interfaces so callers need only this package.
type (
	Logger        = logger.Logger
	SugarLogger   = logger.SugarLogger
	Field         = logger.Field
	LogLevel      = logger.LogLevel
	LoggingConfig = logger.LoggingConfig
)

// Re-export logger constants
const (
	LevelDebug = logger.LevelDebug
	LevelInfo  = logger.LevelInfo
	LevelWarn  = logger.LevelWarn
	LevelError = logger.LevelError
	LevelFatal = logger.LevelFatal
)

// Re-export logger constructors
var (
	NewLogger            = logger.NewLogger
	NewDevelopmentLogger = logger.NewDevelopmentLogger
	NewProductionLogger  = logger.NewProductionLogger
	NewNoopLogger        = logger.NewNoopLogger
)

// Re-export field constructors
var (
	String   = logger.String
	Int      = logger.Int
	Int64    = logger.Int64
	Float64  = logger.Float64
	Bool     = logger.Bool
	Time     = logger.Time
	Duration = logger.Duration
	Error    = logger.Error
	Stringer = logger.Stringer
	Any      = logger.Any
)

// F creates a new field (alias for Any).
func F(key string, value interface{}) Field {
	return logger.Any(key, value)
}
