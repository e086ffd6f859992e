package ui

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/xraph/sidenav/resolve"
)

// renderString renders a node to its markup. A nil node renders as the
// empty string, matching how gomponents treats nil children.
func renderString(t *testing.T, n g.Node) string {
	t.Helper()

	if n == nil {
		return ""
	}

	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}

	return b.String()
}

func testRoutes() resolve.RouteResolver {
	table := resolve.NewRouteTable()
	table.RegisterAll(map[string]string{
		"dashboard": "/panel/dashboard",
		"models":    "/panel/models",
		"instances": "/panel/models/instances",
	})

	return table
}

func testAssets() resolve.AssetResolver {
	return resolve.StaticPrefix("/static")
}
