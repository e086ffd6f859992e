package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	navauth "github.com/xraph/sidenav/auth"
	"github.com/xraph/sidenav/resolve"
)

// Header renders the sidebar header: the panel title plus exactly one
// identity variant. An authenticated user gets the avatar, acronym, name,
// and role block; everyone else gets the single menu-chooser affordance.
// Never both, never a mixture.
func Header(title string, user *navauth.UserInfo, chooserIcon string, assets resolve.AssetResolver) g.Node {
	return html.Div(
		html.Class("menu-header"),
		html.H3(html.Class("menu-title"), g.Text(title)),
		headerIdentity(user, chooserIcon, assets),
	)
}

func headerIdentity(user *navauth.UserInfo, chooserIcon string, assets resolve.AssetResolver) g.Node {
	if !user.Authenticated() {
		return html.Button(
			html.Type("button"),
			html.Class("menu-chooser"),
			g.Attr("onclick", "switchContent('"+PanelID+"')"),
			g.Attr("aria-label", "Open menu"),
			html.Img(html.Src(assets.Asset(chooserIcon)), html.Alt("Menu")),
		)
	}

	return html.Div(
		html.Class("menu-user"),
		g.If(user.Avatar != "",
			html.Img(
				html.Class("menu-avatar"),
				html.Src(assets.Asset(user.Avatar)),
				html.Alt(user.Name),
			),
		),
		html.Span(html.Class(ShortTextClass), g.Text(user.DisplayAcronym())),
		html.Span(
			html.Class(LongTextClass),
			g.Text(user.Name),
			g.If(user.Role != "",
				html.Small(html.Class("menu-role"), g.Text(user.Role)),
			),
		),
	)
}
