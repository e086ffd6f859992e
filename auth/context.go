package navauth

import (
	"context"
)

type contextKey string

const userContextKey contextKey = "sidenav:user"

// WithUser returns a context carrying the given user. Storing nil is a
// no-op; the absence of a user already means anonymous.
func WithUser(ctx context.Context, user *UserInfo) context.Context {
	if user == nil {
		return ctx
	}

	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the user stored by WithUser, or nil when the
// request is anonymous.
func UserFromContext(ctx context.Context) *UserInfo {
	user, _ := ctx.Value(userContextKey).(*UserInfo)

	return user
}

// IsAuthenticated reports whether the context carries a signed-in user.
func IsAuthenticated(ctx context.Context) bool {
	return UserFromContext(ctx).Authenticated()
}
