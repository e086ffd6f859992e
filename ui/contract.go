// Package ui renders the sidebar navigation markup. Every renderer is a
// pure function from configuration and request state to gomponents nodes:
// no I/O, no shared mutable state, safe to call from any number of
// goroutines at once.
//
// The emitted ids and class names are a published contract. Client-side
// code — the shipped toggle script and any host CSS — keys off them, so
// they stay stable across releases.
package ui

// Identifiers client code depends on. The collapse script targets PanelID
// and ContentID; the label spans carry ShortTextClass and LongTextClass so
// CSS can swap them as the panel collapses and expands.
const (
	// PanelID is the id of the sidebar panel element.
	PanelID = "main-menu"

	// ContentID is the id of the content area the host's page body is
	// injected into.
	ContentID = "content"

	// ShortTextClass marks the label form shown while the panel is
	// collapsed.
	ShortTextClass = "menu-short-text"

	// LongTextClass marks the label form shown while the panel is
	// expanded.
	LongTextClass = "menu-long-text"

	// CollapsedClass is toggled on the panel by switchContent.
	CollapsedClass = "collapsed"

	// OpenClass is toggled on a dropdown list by toggleDropdown.
	OpenClass = "open"
)

// IconAssetDir is the fixed directory local-collection icons resolve
// under before the asset resolver is applied.
const IconAssetDir = "img/icons/"
