// Package extras mounts the navigation server into third-party routers,
// for hosts that keep their own routing stack and want the panel living
// under a prefix of it. Every mount strips the prefix before dispatch,
// so the mounted handler keeps seeing its own paths.
package extras

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// MountChi mounts handler under prefix on a chi router.
func MountChi(router chi.Router, prefix string, handler http.Handler) {
	prefix = normalizePrefix(prefix)
	if prefix == "/" {
		router.Mount("/", handler)
		return
	}

	router.Mount(prefix, http.StripPrefix(prefix, handler))
}

// normalizePrefix reduces a mount prefix to a /name form without a
// trailing slash; the empty and root prefixes both become "/".
func normalizePrefix(prefix string) string {
	return "/" + strings.Trim(prefix, "/")
}
