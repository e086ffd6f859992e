package menu

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a menu configuration document from r and parses it.
func Load(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("menu: read: %w", err)
	}

	return Parse(data)
}

// LoadFile parses the menu configuration document at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("menu: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a menu configuration document. The source is a YAML mapping
// of group name to group body (JSON works too, being a YAML subset). Key
// order in the source is meaningful and preserved, which is why parsing
// walks the yaml.Node document tree instead of decoding into Go maps.
//
// The schema is strict: every structural problem is reported here, as a
// *SchemaError carrying the key path and source position. Rendering never
// sees a malformed configuration.
func Parse(data []byte) (Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("menu: parse: %w", err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Config{}, nil
	}

	root := resolveAlias(doc.Content[0])
	if isNull(root) {
		return Config{}, nil
	}

	if root.Kind != yaml.MappingNode {
		return Config{}, nodeError(ErrNotMapping, root, "", "menu document must be a mapping of group names")
	}

	cfg := Config{Groups: make([]Group, 0, len(root.Content)/2)}
	seen := make(map[string]struct{}, len(root.Content)/2)

	for i := 0; i < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valNode := resolveAlias(root.Content[i+1])
		name := keyNode.Value

		if name == MetaKey {
			return Config{}, nodeError(ErrReservedKey, keyNode, name, "reserved key cannot name a group")
		}

		if _, ok := seen[name]; ok {
			return Config{}, nodeError(ErrDuplicateKey, keyNode, name, "duplicate group name")
		}

		seen[name] = struct{}{}

		group, err := parseGroup(name, valNode)
		if err != nil {
			return Config{}, err
		}

		cfg.Groups = append(cfg.Groups, group)
	}

	return cfg, nil
}

func parseGroup(name string, node *yaml.Node) (Group, error) {
	gr := Group{Name: name}

	// An empty group is legal: it renders as its separator alone.
	if isNull(node) {
		return gr, nil
	}

	if node.Kind != yaml.MappingNode {
		return Group{}, nodeError(ErrNotMapping, node, name, "group body must be a mapping of entry names")
	}

	seen := make(map[string]struct{}, len(node.Content)/2)

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := resolveAlias(node.Content[i+1])
		entryName := keyNode.Value
		path := name + "." + entryName

		if _, ok := seen[entryName]; ok {
			return Group{}, nodeError(ErrDuplicateKey, keyNode, path, "duplicate entry name")
		}

		seen[entryName] = struct{}{}

		if entryName == MetaKey {
			meta, err := parseMeta(path, valNode)
			if err != nil {
				return Group{}, err
			}

			gr.Meta = meta

			continue
		}

		entry, err := parseEntry(entryName, path, valNode)
		if err != nil {
			return Group{}, err
		}

		gr.Entries = append(gr.Entries, entry)
	}

	return gr, nil
}

func parseMeta(path string, node *yaml.Node) (map[string]string, error) {
	if isNull(node) {
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, nodeError(ErrNotMapping, node, path, "metadata body must be a mapping")
	}

	meta := make(map[string]string, len(node.Content)/2)

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := resolveAlias(node.Content[i+1])

		if _, ok := meta[keyNode.Value]; ok {
			return nil, nodeError(ErrDuplicateKey, keyNode, path+"."+keyNode.Value, "duplicate metadata key")
		}

		if valNode.Kind != yaml.ScalarNode {
			return nil, nodeError(ErrBadField, valNode, path+"."+keyNode.Value, "metadata values must be scalars")
		}

		meta[keyNode.Value] = valNode.Value
	}

	return meta, nil
}

func parseEntry(name, path string, node *yaml.Node) (Entry, error) {
	e := Entry{Name: name}

	// A bare entry with no body has no href and renders as nothing.
	if isNull(node) {
		return e, nil
	}

	if node.Kind != yaml.MappingNode {
		return Entry{}, nodeError(ErrNotMapping, node, path, "entry body must be a mapping")
	}

	seen := make(map[string]struct{}, len(node.Content)/2)

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := resolveAlias(node.Content[i+1])
		field := keyNode.Value

		if _, ok := seen[field]; ok {
			return Entry{}, nodeError(ErrDuplicateKey, keyNode, path+"."+field, "duplicate field")
		}

		seen[field] = struct{}{}

		switch field {
		case "href":
			v, ok := scalar(valNode)
			if !ok {
				return Entry{}, nodeError(ErrBadField, valNode, path, "href must be a scalar")
			}

			// Presence is what matters: an explicitly empty href still
			// gates the entry in.
			e.Href = v
			e.HasHref = true

		case "icon":
			v, ok := scalar(valNode)
			if !ok {
				return Entry{}, nodeError(ErrBadField, valNode, path, "icon must be a scalar")
			}

			e.Icon = v

		case "type":
			v, ok := scalar(valNode)
			if !ok {
				return Entry{}, nodeError(ErrBadField, valNode, path, "type must be a scalar")
			}

			e.IconType = ParseIconKind(v)

		case "dropdown":
			dd, err := parseDropdown(path, valNode)
			if err != nil {
				return Entry{}, err
			}

			e.Dropdown = dd

		default:
			return Entry{}, nodeError(ErrBadField, keyNode, path, fmt.Sprintf("unknown field %q", field))
		}
	}

	return e, nil
}

func parseDropdown(path string, node *yaml.Node) ([]SubEntry, error) {
	if isNull(node) {
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, nodeError(ErrNotMapping, node, path+".dropdown", "dropdown body must be a mapping of sub-entry names")
	}

	subs := make([]SubEntry, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := resolveAlias(node.Content[i+1])
		subPath := path + "." + keyNode.Value

		if _, ok := seen[keyNode.Value]; ok {
			return nil, nodeError(ErrDuplicateKey, keyNode, subPath, "duplicate sub-entry name")
		}

		seen[keyNode.Value] = struct{}{}

		sub, err := parseSubEntry(keyNode.Value, subPath, valNode)
		if err != nil {
			return nil, err
		}

		subs = append(subs, sub)
	}

	return subs, nil
}

func parseSubEntry(name, path string, node *yaml.Node) (SubEntry, error) {
	s := SubEntry{Name: name}

	if isNull(node) {
		return s, nil
	}

	if node.Kind != yaml.MappingNode {
		return SubEntry{}, nodeError(ErrNotMapping, node, path, "sub-entry body must be a mapping")
	}

	seen := make(map[string]struct{}, len(node.Content)/2)

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := resolveAlias(node.Content[i+1])
		field := keyNode.Value

		if _, ok := seen[field]; ok {
			return SubEntry{}, nodeError(ErrDuplicateKey, keyNode, path+"."+field, "duplicate field")
		}

		seen[field] = struct{}{}

		switch field {
		case "href":
			v, ok := scalar(valNode)
			if !ok {
				return SubEntry{}, nodeError(ErrBadField, valNode, path, "href must be a scalar")
			}

			s.Href = v
			s.HasHref = true

		case "icon":
			v, ok := scalar(valNode)
			if !ok {
				return SubEntry{}, nodeError(ErrBadField, valNode, path, "icon must be a scalar")
			}

			s.Icon = v

		case "type":
			// Sub-entry icons are always Font Awesome. A type field here
			// is tolerated and ignored, but it still has to be a scalar.
			if _, ok := scalar(valNode); !ok {
				return SubEntry{}, nodeError(ErrBadField, valNode, path, "type must be a scalar")
			}

		case "dropdown":
			return SubEntry{}, nodeError(ErrNestedDropdown, keyNode, path, "dropdowns nest at most one level")

		default:
			return SubEntry{}, nodeError(ErrBadField, keyNode, path, fmt.Sprintf("unknown field %q", field))
		}
	}

	return s, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func scalar(n *yaml.Node) (string, bool) {
	if n.Kind == yaml.ScalarNode && n.Tag != "!!null" {
		return n.Value, true
	}

	if n.Kind == yaml.ScalarNode {
		// Null scalars read as empty strings: "href:" with no value is
		// present-but-empty, not absent.
		return "", true
	}

	return "", false
}
