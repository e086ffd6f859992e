package menu

import (
	"unicode/utf8"
)

// MetaKey is the reserved group key that carries configuration metadata.
// A key with this name inside a group body is captured into Group.Meta and
// never contributes a rendered entry.
const MetaKey = "#meta"

// IconKind identifies the icon collection an entry's icon is drawn from.
type IconKind string

const (
	// IconNone means no icon renders for the entry.
	IconNone IconKind = ""

	// IconFA selects the Font Awesome collection.
	IconFA IconKind = "fa"

	// IconXL selects the extra-large inline SVG sprite collection.
	IconXL IconKind = "xl"

	// IconLC selects the local image collection served from the fixed
	// icon asset directory.
	IconLC IconKind = "lc"
)

// ParseIconKind maps a configured type string onto an IconKind. Unknown
// values map to IconNone rather than an error: an entry with an
// unrecognized icon type renders without an icon, it does not fail.
func ParseIconKind(s string) IconKind {
	switch s {
	case "fa":
		return IconFA
	case "xl":
		return IconXL
	case "lc":
		return IconLC
	default:
		return IconNone
	}
}

// String returns the configured type string for the kind.
func (k IconKind) String() string {
	return string(k)
}

// Valid reports whether k names a known icon collection.
func (k IconKind) Valid() bool {
	switch k {
	case IconFA, IconXL, IconLC:
		return true
	default:
		return false
	}
}

// Config is an ordered collection of navigation groups. Group order and
// entry order come verbatim from the source configuration and are the only
// ordering inputs rendering ever consults.
//
// A Config is immutable by convention after loading: rendering reads it
// concurrently without locks.
type Config struct {
	Groups []Group `json:"groups" yaml:"groups"`
}

// Group is a named, ordered run of entries separated from its neighbors by
// a visual divider. Meta carries the group's reserved metadata mapping, if
// the source had one; it never renders.
type Group struct {
	Name    string            `json:"name" yaml:"name"`
	Meta    map[string]string `json:"meta,omitempty" yaml:"meta,omitempty"`
	Entries []Entry           `json:"entries" yaml:"entries"`
}

// Entry is a single navigation item. Every field except Name is optional;
// what renders is governed by which fields are set:
//
//   - HasHref gates the whole entry. An entry without href is skipped
//     entirely, dropdown included. An entry whose href was present but
//     empty still renders.
//   - Icon and IconType must BOTH be set for an icon to render; either one
//     alone produces an entry with no icon element.
//   - Dropdown holds the entry's one level of children. It is honored only
//     when the entry itself has href.
type Entry struct {
	Name string `json:"name" yaml:"name"`

	// Href is the route name resolved to a URL at render time. HasHref
	// records whether the field was present in the source at all;
	// presence, not non-emptiness, is the render gate.
	Href    string `json:"href,omitempty" yaml:"href,omitempty"`
	HasHref bool   `json:"has_href,omitempty" yaml:"has_href,omitempty"`

	Icon     string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	IconType IconKind `json:"type,omitempty" yaml:"type,omitempty"`

	Dropdown []SubEntry `json:"dropdown,omitempty" yaml:"dropdown,omitempty"`
}

// SubEntry is a dropdown child. Children sit exactly one level below their
// parent; the schema has no deeper nesting. Sub-entry icons always come
// from the Font Awesome collection, so there is no type field: any type in
// the source is ignored by the loader.
type SubEntry struct {
	Name    string `json:"name" yaml:"name"`
	Href    string `json:"href,omitempty" yaml:"href,omitempty"`
	HasHref bool   `json:"has_href,omitempty" yaml:"has_href,omitempty"`
	Icon    string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// HasIcon reports whether the entry satisfies the two-field icon gate:
// both an icon name and a known icon type.
func (e Entry) HasIcon() bool {
	return e.Icon != "" && e.IconType != IconNone
}

// ToggleID returns the dropdown toggle identifier for the entry: its href
// with the first character removed. An href of "#reports" yields
// "reports". The identifier doubles as the id of the dropdown list element
// and as the argument client code passes to toggleDropdown.
func (e Entry) ToggleID() string {
	if e.Href == "" {
		return ""
	}

	_, size := utf8.DecodeRuneInString(e.Href)

	return e.Href[size:]
}

// RenderableEntries counts the entries and sub-entries that pass their
// render gates. The count feeds render instrumentation; it applies the
// same rules rendering does, so a dropdown under an entry without href
// contributes nothing.
func (c Config) RenderableEntries() int {
	n := 0

	for _, gr := range c.Groups {
		for _, e := range gr.Entries {
			if !e.HasHref {
				continue
			}

			n++

			for _, s := range e.Dropdown {
				if s.HasHref {
					n++
				}
			}
		}
	}

	return n
}

// Validate checks structural rules the loader enforces for configs built
// in code rather than loaded from a source document: unique group names,
// unique entry and sub-entry names within their scope, and no use of the
// reserved metadata key as a name. It does NOT reject unknown icon types;
// those render as no icon.
func (c Config) Validate() error {
	groups := make(map[string]struct{}, len(c.Groups))

	for _, gr := range c.Groups {
		if gr.Name == MetaKey {
			return newSchemaError(ErrReservedKey, gr.Name, "reserved key used as group name")
		}

		if _, ok := groups[gr.Name]; ok {
			return newSchemaError(ErrDuplicateKey, gr.Name, "duplicate group name")
		}

		groups[gr.Name] = struct{}{}

		entries := make(map[string]struct{}, len(gr.Entries))

		for _, e := range gr.Entries {
			path := gr.Name + "." + e.Name

			if e.Name == MetaKey {
				return newSchemaError(ErrReservedKey, path, "reserved key used as entry name")
			}

			if _, ok := entries[e.Name]; ok {
				return newSchemaError(ErrDuplicateKey, path, "duplicate entry name")
			}

			entries[e.Name] = struct{}{}

			subs := make(map[string]struct{}, len(e.Dropdown))

			for _, s := range e.Dropdown {
				if _, ok := subs[s.Name]; ok {
					return newSchemaError(ErrDuplicateKey, path+"."+s.Name, "duplicate sub-entry name")
				}

				subs[s.Name] = struct{}{}
			}
		}
	}

	return nil
}
