package extras

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// mountMethods are the methods the navigation handler answers to.
var mountMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
}

// MountHTTPRouter mounts handler under prefix on a julienschmidt
// httprouter. Mounting at the root prefix installs the handler as the
// router's NotFound fallback instead, since httprouter cannot combine a
// root catch-all with other routes.
func MountHTTPRouter(router *httprouter.Router, prefix string, handler http.Handler) {
	prefix = normalizePrefix(prefix)

	if prefix == "/" {
		router.NotFound = handler
		return
	}

	mounted := http.StripPrefix(prefix, handler)
	for _, method := range mountMethods {
		router.Handler(method, prefix, mounted)
		router.Handler(method, prefix+"/*filepath", mounted)
	}
}
