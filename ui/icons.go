package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/sidenav/menu"
	"github.com/xraph/sidenav/resolve"
)

// Icon renders the icon element for a top-level entry. The icon gate needs
// both pieces: a non-empty name and a known kind. Anything less renders
// nothing — an unrecognized kind is silent, never an error.
//
// Each kind maps to its own markup shape:
//
//	fa  <i class="fa fa-NAME menu-icon"></i>
//	xl  <svg class="menu-icon"><use href="#NAME"></use></svg>
//	lc  <img class="menu-icon" src="ASSETS(img/icons/NAME)">
func Icon(kind menu.IconKind, name string, assets resolve.AssetResolver) g.Node {
	if name == "" {
		return nil
	}

	switch kind {
	case menu.IconFA:
		return html.I(html.Class("fa fa-" + name + " menu-icon"))

	case menu.IconXL:
		return html.SVG(
			html.Class("menu-icon"),
			g.Attr("aria-hidden", "true"),
			g.El("use", g.Attr("href", "#"+name)),
		)

	case menu.IconLC:
		return html.Img(
			html.Class("menu-icon"),
			html.Src(assets.Asset(IconAssetDir+name)),
			html.Alt(""),
		)

	default:
		return nil
	}
}

// SubIcon renders a dropdown child's icon. Children always draw from the
// Font Awesome collection; there is no kind to choose.
func SubIcon(name string) g.Node {
	if name == "" {
		return nil
	}

	return html.I(html.Class("fa fa-" + name + " menu-icon"))
}
