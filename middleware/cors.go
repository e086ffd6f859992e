package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig defines configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins lists origins that may call the API endpoints.
	// "*" allows any origin.
	AllowedOrigins []string

	// AllowedMethods and AllowedHeaders are advertised on preflight.
	AllowedMethods []string
	AllowedHeaders []string

	// MaxAge caches the preflight result, in seconds.
	MaxAge int
}

// DefaultCORSConfig returns a read-only-friendly default: any origin may
// GET the navigation manifest, nothing more.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderRequestID},
		MaxAge:         86400,
	}
}

// CORS handles cross-origin requests against the configured policy,
// answering preflights directly and stamping the response headers on
// everything else.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	allowAny := false
	allowed := make(map[string]bool, len(config.AllowedOrigins))

	for _, origin := range config.AllowedOrigins {
		if origin == "*" {
			allowAny = true
		}

		allowed[origin] = true
	}

	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)

				return
			}

			if !allowAny && !allowed[origin] {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusForbidden)

					return
				}

				next.ServeHTTP(w, r)

				return
			}

			if allowAny {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)

				if config.MaxAge > 0 {
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}

				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
