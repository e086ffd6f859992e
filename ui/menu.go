package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/sidenav/menu"
	"github.com/xraph/sidenav/resolve"
)

// Menu renders the full navigation list. Groups and entries appear in
// configuration order, with a divider before every group — the first one
// included. Group metadata under the reserved key contributes nothing.
func Menu(cfg menu.Config, routes resolve.RouteResolver, assets resolve.AssetResolver) g.Node {
	items := make([]g.Node, 0, len(cfg.Groups)*2)

	for _, gr := range cfg.Groups {
		items = append(items, separatorItem())

		for _, e := range gr.Entries {
			items = append(items, Entry(e, routes, assets))
		}
	}

	return html.Ul(
		html.Class("menu-list"),
		g.Group(items),
	)
}

func separatorItem() g.Node {
	return html.Li(
		html.Class("menu-separator"),
		g.Attr("role", "separator"),
		html.Hr(),
	)
}
