package extras

import (
	"net/http"

	"github.com/uptrace/bunrouter"
)

// MountBunRouter mounts handler under prefix on a bunrouter router. Both
// the bare prefix and everything below it dispatch to the handler.
func MountBunRouter(router *bunrouter.Router, prefix string, handler http.Handler) {
	prefix = normalizePrefix(prefix)

	if prefix == "/" {
		router.Handle("*", "/", bunrouter.HTTPHandlerFunc(handler.ServeHTTP))
		router.Handle("*", "/*path", bunrouter.HTTPHandlerFunc(handler.ServeHTTP))
		return
	}

	mounted := http.StripPrefix(prefix, handler)
	router.Handle("*", prefix, bunrouter.HTTPHandlerFunc(mounted.ServeHTTP))
	router.Handle("*", prefix+"/*path", bunrouter.HTTPHandlerFunc(mounted.ServeHTTP))
}
