package sidenav

import (
	"github.com/xraph/sidenav/menu"
	"github.com/xraph/sidenav/resolve"
)

// ResolvedSubEntry is one dropdown child with its route resolved.
type ResolvedSubEntry struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon string `json:"icon,omitempty"`
}

// ResolvedEntry is one navigable menu entry with its route resolved.
// ToggleID is set only for entries that carry a dropdown.
type ResolvedEntry struct {
	Name     string             `json:"name"`
	Href     string             `json:"href"`
	Icon     string             `json:"icon,omitempty"`
	IconType string             `json:"icon_type,omitempty"`
	ToggleID string             `json:"toggle_id,omitempty"`
	Children []ResolvedSubEntry `json:"children,omitempty"`
}

// ResolvedGroup mirrors one menu group after gating: entries without a
// link are dropped, exactly as the markup renderer drops them. Groups
// are kept even when all of their entries are dropped, matching the
// separator the markup emits for every group.
type ResolvedGroup struct {
	Name    string            `json:"name"`
	Meta    map[string]string `json:"meta,omitempty"`
	Entries []ResolvedEntry   `json:"entries"`
}

// resolveGroups projects the menu through the same gates the markup
// renderer applies and resolves every href through routes.
func resolveGroups(cfg menu.Config, routes resolve.RouteResolver) []ResolvedGroup {
	groups := make([]ResolvedGroup, 0, len(cfg.Groups))
	for _, group := range cfg.Groups {
		resolved := ResolvedGroup{
			Name:    group.Name,
			Meta:    group.Meta,
			Entries: make([]ResolvedEntry, 0, len(group.Entries)),
		}
		for _, entry := range group.Entries {
			if !entry.HasHref {
				continue
			}
			re := ResolvedEntry{
				Name: entry.Name,
				Href: routes.Route(entry.Href),
			}
			if entry.HasIcon() {
				re.Icon = entry.Icon
				re.IconType = entry.IconType.String()
			}
			if len(entry.Dropdown) > 0 {
				re.ToggleID = entry.ToggleID()
				re.Children = resolveSubEntries(entry.Dropdown, routes)
			}
			resolved.Entries = append(resolved.Entries, re)
		}
		groups = append(groups, resolved)
	}
	return groups
}

func resolveSubEntries(subs []menu.SubEntry, routes resolve.RouteResolver) []ResolvedSubEntry {
	children := make([]ResolvedSubEntry, 0, len(subs))
	for _, sub := range subs {
		if !sub.HasHref {
			continue
		}
		children = append(children, ResolvedSubEntry{
			Name: sub.Name,
			Href: routes.Route(sub.Href),
			Icon: sub.Icon,
		})
	}
	return children
}
