package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ScriptOption configures the emitted script element.
type ScriptOption func(*scriptOptions)

type scriptOptions struct {
	nonce string
}

// WithNonce sets a CSP nonce attribute on the script element.
func WithNonce(nonce string) ScriptOption {
	return func(o *scriptOptions) {
		o.nonce = nonce
	}
}

// ToggleScript emits the client half of the DOM contract: the global
// switchContent and toggleDropdown functions the rendered markup's onclick
// handlers call. Hosts that ship their own implementation can skip this
// node, as long as the two functions keep the same signatures.
func ToggleScript(opts ...ScriptOption) g.Node {
	var o scriptOptions
	for _, opt := range opts {
		opt(&o)
	}

	attrs := []g.Node{}
	if o.nonce != "" {
		attrs = append(attrs, g.Attr("nonce", o.nonce))
	}

	attrs = append(attrs, g.Raw(toggleJS()))

	return html.Script(attrs...)
}

func toggleJS() string {
	return fmt.Sprintf(`
window.switchContent = function (panelId) {
	var panel = document.getElementById(panelId);
	if (!panel) {
		return;
	}
	panel.classList.toggle('%s');
	var content = document.getElementById('%s');
	if (content) {
		content.classList.toggle('expanded');
	}
};

window.toggleDropdown = function (targetId) {
	var list = document.getElementById(targetId);
	if (!list) {
		return;
	}
	list.classList.toggle('%s');
};
`, CollapsedClass, ContentID, OpenClass)
}

// BaseStyles emits the structural stylesheet behind the collapse
// semantics: which label form is visible in each panel state and how
// dropdown lists open. Visual theming stays with the host.
func BaseStyles() g.Node {
	return html.StyleEl(g.Raw(fmt.Sprintf(`
.side-menu { width: 240px; overflow-x: hidden; transition: width 0.15s ease; }
.side-menu.%[1]s { width: 56px; }
.side-menu .%[2]s { display: none; }
.side-menu.%[1]s .%[2]s { display: inline; }
.side-menu.%[1]s .%[3]s { display: none; }
.menu-list, .menu-dropdown { list-style: none; margin: 0; padding: 0; }
.menu-dropdown { display: none; }
.menu-dropdown.%[4]s { display: block; }
.menu-dropdown .menu-link { padding-left: 1.5em; }
.menu-separator hr, hr.menu-separator { border: 0; border-top: 1px solid currentColor; opacity: 0.2; }
.menu-link { display: flex; align-items: center; gap: 0.5em; padding: 0.5em 0.75em; text-decoration: none; }
.menu-icon { width: 1.25em; text-align: center; }
.menu-avatar { width: 2em; height: 2em; border-radius: 50%%; }
`, CollapsedClass, ShortTextClass, LongTextClass, OpenClass)))
}
