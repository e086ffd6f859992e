package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/xraph/sidenav/internal/logger"
)

// Recovery turns handler panics into 500 responses and logs them with a
// stack trace instead of letting the connection die.
func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error(fmt.Sprintf("panic recovered: %v", rec),
						logger.HTTPMethod(r.Method),
						logger.HTTPPath(r.URL.Path),
						logger.String("stack", string(debug.Stack())),
					)

					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
