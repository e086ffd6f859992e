// Package navauth carries the authentication state the navigation header
// renders from. It deliberately knows nothing about how authentication
// happens: hosts implement AuthChecker against their own session or token
// scheme and the renderer only ever sees the resulting UserInfo.
package navauth

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"
)

// UserInfo is the identity block shown in the sidebar header for an
// authenticated request. A nil *UserInfo means anonymous; the header then
// falls back to the menu chooser affordance instead.
type UserInfo struct {
	// Avatar is the asset name of the user's avatar image, resolved
	// through the asset resolver at render time.
	Avatar string `json:"avatar,omitempty"`

	// Acronym is the short display key shown while the sidebar is
	// collapsed. When empty it is derived from Name.
	Acronym string `json:"acronym,omitempty"`

	// Name is the user's display name. A UserInfo without a name does not
	// count as authenticated.
	Name string `json:"name"`

	// Role is a free-form role caption shown under the name.
	Role string `json:"role,omitempty"`
}

// Authenticated reports whether u represents a signed-in user. It is safe
// to call on a nil receiver.
func (u *UserInfo) Authenticated() bool {
	return u != nil && u.Name != ""
}

// DisplayAcronym returns the short key shown in the collapsed sidebar:
// the configured Acronym when present, otherwise the first and last
// initials of Name, and "?" when neither yields anything.
func (u *UserInfo) DisplayAcronym() string {
	if u == nil {
		return "?"
	}

	if u.Acronym != "" {
		return u.Acronym
	}

	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return "?"
	}

	first, _ := utf8.DecodeRuneInString(fields[0])
	if len(fields) == 1 {
		return strings.ToUpper(string(first))
	}

	last, _ := utf8.DecodeRuneInString(fields[len(fields)-1])

	return strings.ToUpper(string(first) + string(last))
}

// AuthChecker resolves the user behind an HTTP request. Implementations
// return (nil, nil) for anonymous requests; an error means the check
// itself failed, which callers treat as anonymous rather than blocking
// the page.
type AuthChecker interface {
	CheckAuth(ctx context.Context, r *http.Request) (*UserInfo, error)
}

// AuthCheckerFunc adapts a function to the AuthChecker interface.
type AuthCheckerFunc func(ctx context.Context, r *http.Request) (*UserInfo, error)

// CheckAuth implements AuthChecker.
func (f AuthCheckerFunc) CheckAuth(ctx context.Context, r *http.Request) (*UserInfo, error) {
	return f(ctx, r)
}
