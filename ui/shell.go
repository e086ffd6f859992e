package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	navauth "github.com/xraph/sidenav/auth"
	"github.com/xraph/sidenav/menu"
	"github.com/xraph/sidenav/resolve"
)

// View is the explicit parameter object a shell render works from. There
// is no ambient request or session state anywhere in the package: what the
// caller puts here is everything the markup can depend on.
type View struct {
	// Title is shown in the header and, for full pages, the document
	// title.
	Title string

	// Menu is the validated navigation configuration.
	Menu menu.Config

	// User selects the header variant; nil renders the anonymous one.
	User *navauth.UserInfo

	// Routes and Assets resolve entry hrefs and image references.
	Routes resolve.RouteResolver
	Assets resolve.AssetResolver

	// ChooserIcon is the asset shown by the anonymous header.
	ChooserIcon string

	// ScriptNonce, when set, is attached to the inline toggle script for
	// pages served under a Content-Security-Policy.
	ScriptNonce string

	// Content is the host's page body, injected into the content area by
	// Page. Shell itself does not render it.
	Content g.Node
}

// Shell renders the sidebar panel: header, divider, navigation, and the
// persistent collapse control, inside the aside element client code
// addresses by PanelID.
func Shell(v View) g.Node {
	return html.Aside(
		html.ID(PanelID),
		html.Class("side-menu"),
		Header(v.Title, v.User, v.ChooserIcon, v.Assets),
		html.Hr(html.Class("menu-separator")),
		html.Nav(
			html.Class("menu-nav"),
			Menu(v.Menu, v.Routes, v.Assets),
		),
		collapseControl(),
	)
}

// Page wraps Shell in a complete HTML document: head with the Font
// Awesome stylesheet, the structural styles, and the toggle script, then
// a body holding the panel and the content area.
func Page(v View) g.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(g.Text(v.Title)),
			html.Link(
				html.Rel("stylesheet"),
				html.Href("https://cdnjs.cloudflare.com/ajax/libs/font-awesome/4.7.0/css/font-awesome.min.css"),
			),
			BaseStyles(),
			ToggleScript(WithNonce(v.ScriptNonce)),
		),
		html.Body(
			Shell(v),
			html.Main(
				html.ID(ContentID),
				html.Class("content-area"),
				v.Content,
			),
		),
	)
}

func collapseControl() g.Node {
	return html.Button(
		html.Type("button"),
		html.Class("menu-collapse"),
		g.Attr("onclick", "switchContent('"+PanelID+"')"),
		g.Attr("aria-label", "Toggle menu"),
		html.Span(html.Class(ShortTextClass), g.Text("»")),
		html.Span(html.Class(LongTextClass), g.Text("«")),
	)
}
