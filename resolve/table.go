package resolve

import (
	"sort"
	"sync"
)

// RouteTable is a concurrency-safe registry of named routes. It implements
// RouteResolver; unknown names resolve to themselves, which keeps the
// resolver total and rendering free of lookup failures.
//
// Hosts typically fill the table during startup and leave it read-mostly
// afterwards, but registration stays safe at any time.
type RouteTable struct {
	mu     sync.RWMutex
	routes map[string]string
}

// NewRouteTable returns an empty route table.
func NewRouteTable() *RouteTable {
	return &RouteTable{
		routes: make(map[string]string),
	}
}

// Register maps a route name to its URL path. Registering a name again
// overwrites the earlier path.
func (t *RouteTable) Register(name, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.routes[name] = path
}

// RegisterAll registers every name/path pair in the given map.
func (t *RouteTable) RegisterAll(routes map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for name, path := range routes {
		t.routes[name] = path
	}
}

// Route implements RouteResolver. Unregistered names fall back to the
// name itself.
func (t *RouteTable) Route(name string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if path, ok := t.routes[name]; ok {
		return path
	}

	return name
}

// Names returns the registered route names in sorted order.
func (t *RouteTable) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.routes))
	for name := range t.routes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of registered routes.
func (t *RouteTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.routes)
}
