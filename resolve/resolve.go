// Package resolve turns the symbolic names a menu configuration uses into
// concrete URLs. Rendering never builds URLs itself: entry hrefs go
// through a RouteResolver and image/icon references go through an
// AssetResolver, so hosts keep full control over their URL space.
//
// Resolvers must be total functions: every name yields a usable string.
// Lookup failures are not a render-time concept.
package resolve

import (
	"strings"
)

// RouteResolver maps a route name from the menu configuration to the URL
// the rendered anchor links to.
type RouteResolver interface {
	Route(name string) string
}

// RouteFunc adapts a function to the RouteResolver interface.
type RouteFunc func(name string) string

// Route implements RouteResolver.
func (f RouteFunc) Route(name string) string {
	return f(name)
}

// AssetResolver maps an asset path (avatar images, local-collection icons,
// stylesheets) to the URL it is served from.
type AssetResolver interface {
	Asset(path string) string
}

// AssetFunc adapts a function to the AssetResolver interface.
type AssetFunc func(path string) string

// Asset implements AssetResolver.
func (f AssetFunc) Asset(path string) string {
	return f(path)
}

// Identity returns a RouteResolver that uses each route name verbatim as
// its URL. Useful when the menu configuration already contains paths.
func Identity() RouteResolver {
	return RouteFunc(func(name string) string {
		return name
	})
}

// StaticPrefix returns an AssetResolver that prepends prefix to every
// asset path, joining the two with exactly one slash.
func StaticPrefix(prefix string) AssetResolver {
	trimmed := strings.TrimRight(prefix, "/")

	return AssetFunc(func(path string) string {
		return trimmed + "/" + strings.TrimLeft(path, "/")
	})
}
