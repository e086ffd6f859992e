package middleware

import (
	"net/http"
	"time"

	"github.com/xraph/sidenav/internal/logger"
)

// LoggingConfig defines configuration for the logging middleware.
type LoggingConfig struct {
	// IncludeHeaders includes request headers in the start log.
	IncludeHeaders bool

	// ExcludePaths lists paths that never log, typically probe and
	// scrape endpoints.
	ExcludePaths []string

	// SensitiveHeaders lists headers whose values are redacted when
	// headers are included.
	SensitiveHeaders []string
}

// DefaultLoggingConfig returns the default logging configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		IncludeHeaders:   false,
		ExcludePaths:     []string{"/healthz", "/metrics"},
		SensitiveHeaders: []string{"Authorization", "Cookie", "Set-Cookie"},
	}
}

// Logging logs each request's start and completion with method, path,
// status, size, and timing, using the default configuration.
func Logging(log logger.Logger) func(http.Handler) http.Handler {
	return LoggingWithConfig(log, DefaultLoggingConfig())
}

// LoggingWithConfig is Logging with a custom configuration.
func LoggingWithConfig(log logger.Logger, config LoggingConfig) func(http.Handler) http.Handler {
	excludeMap := make(map[string]bool, len(config.ExcludePaths))
	for _, path := range config.ExcludePaths {
		excludeMap[path] = true
	}

	sensitiveMap := make(map[string]bool, len(config.SensitiveHeaders))
	for _, name := range config.SensitiveHeaders {
		sensitiveMap[http.CanonicalHeaderKey(name)] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if excludeMap[r.URL.Path] {
				next.ServeHTTP(w, r)

				return
			}

			start := time.Now()
			wrapped := NewResponseWriter(w)

			startFields := []logger.Field{
				logger.HTTPMethod(r.Method),
				logger.HTTPPath(r.URL.Path),
				logger.RequestID(RequestIDFromContext(r.Context())),
			}

			if config.IncludeHeaders {
				startFields = append(startFields, logger.Any("headers", captureHeaders(r.Header, sensitiveMap)))
			}

			log.Info("request started", startFields...)

			next.ServeHTTP(wrapped, r)

			log.Info("request completed",
				logger.HTTPMethod(r.Method),
				logger.HTTPPath(r.URL.Path),
				logger.HTTPStatus(wrapped.Status()),
				logger.Int("bytes", wrapped.BytesWritten()),
				logger.Duration("duration", time.Since(start)),
				logger.RequestID(RequestIDFromContext(r.Context())),
			)
		})
	}
}

func captureHeaders(h http.Header, sensitive map[string]bool) map[string]string {
	out := make(map[string]string, len(h))

	for name := range h {
		if sensitive[http.CanonicalHeaderKey(name)] {
			out[name] = "[REDACTED]"

			continue
		}

		out[name] = h.Get(name)
	}

	return out
}
