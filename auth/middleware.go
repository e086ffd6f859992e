package navauth

import (
	"net/http"
)

// Middleware runs the AuthChecker and stores the resulting UserInfo in the
// request context for the header renderer to pick up.
//
// It never blocks a request: a nil checker, an anonymous result, or a
// checker error all let the request through, and the sidebar renders its
// anonymous header. Exactly one header variant ever renders per request.
func Middleware(checker AuthChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if checker == nil {
				next.ServeHTTP(w, r)

				return
			}

			user, err := checker.CheckAuth(r.Context(), r)
			if err != nil {
				// Auth infrastructure errors degrade to anonymous; they
				// must not take the page down.
				user = nil
			}

			if user != nil {
				r = r.WithContext(WithUser(r.Context(), user))
			}

			next.ServeHTTP(w, r)
		})
	}
}
