package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/sidenav/menu"
	"github.com/xraph/sidenav/resolve"
)

// Entry renders a single navigation entry as a list item. The entry's
// href gates everything: without it the whole entry — dropdown children
// included — renders as nothing. Output is all-or-nothing; a gated entry
// never leaves partial markup behind.
func Entry(e menu.Entry, routes resolve.RouteResolver, assets resolve.AssetResolver) g.Node {
	if !e.HasHref {
		return nil
	}

	if len(e.Dropdown) > 0 {
		return dropdownEntry(e, routes, assets)
	}

	return html.Li(
		html.Class("menu-entry"),
		html.A(
			html.Class("menu-link"),
			html.Href(routes.Route(e.Href)),
			Icon(e.IconType, e.Icon, assets),
			labelPair(e.Name),
		),
	)
}

// dropdownEntry renders an entry with children. The parent anchor does not
// navigate: it carries href="#" and hands its click to toggleDropdown with
// the entry's toggle identifier, which is also the id of the child list.
func dropdownEntry(e menu.Entry, routes resolve.RouteResolver, assets resolve.AssetResolver) g.Node {
	id := e.ToggleID()

	return html.Li(
		html.Class("menu-entry"),
		html.A(
			html.Class("menu-link menu-dropdown-toggle"),
			html.Href("#"),
			g.Attr("data-target", id),
			g.Attr("onclick", fmt.Sprintf("toggleDropdown('%s'); return false;", id)),
			Icon(e.IconType, e.Icon, assets),
			labelPair(e.Name),
		),
		html.Ul(
			html.ID(id),
			html.Class("menu-dropdown"),
			g.Group(subEntries(e.Dropdown, routes)),
		),
	)
}

func subEntries(subs []menu.SubEntry, routes resolve.RouteResolver) []g.Node {
	items := make([]g.Node, 0, len(subs))

	for _, s := range subs {
		if !s.HasHref {
			continue
		}

		items = append(items, html.Li(
			html.Class("menu-entry"),
			html.A(
				html.Class("menu-link"),
				html.Href(routes.Route(s.Href)),
				SubIcon(s.Icon),
				labelPair(s.Name),
			),
		))
	}

	return items
}

// labelPair emits both forms of a label. Both are always present; CSS
// swaps them as the panel collapses.
func labelPair(name string) g.Node {
	return g.Group([]g.Node{
		html.Span(html.Class(ShortTextClass), g.Text(name)),
		html.Span(html.Class(LongTextClass), g.Text(name)),
	})
}
