// Package theme holds the color theme that button rules resolve names against.
package theme

import (
	"fmt"
	"sort"
)

// DefaultKey is the shade key that collapses to the bare group name when
// flattening.
const DefaultKey = "DEFAULT"

// Node is one entry of a color theme tree. A node is either a mapping
// (Children non-nil) or a literal leaf carrying Value.
// Leaf values are usually color strings but any value is accepted.
type Node struct {
	Value    any
	Children map[string]*Node
}

// Leaf returns a literal node.
func Leaf(v any) *Node {
	return &Node{Value: v}
}

// Group returns a mapping node. A nil map yields an empty mapping.
func Group(children map[string]*Node) *Node {
	if children == nil {
		children = map[string]*Node{}
	}
	return &Node{Children: children}
}

// IsMapping reports whether n is an internal node.
func (n *Node) IsMapping() bool {
	return n != nil && n.Children != nil
}

// Literal returns the leaf value when it is a string.
func (n *Node) Literal() (string, bool) {
	if n == nil || n.IsMapping() {
		return "", false
	}
	s, ok := n.Value.(string)
	return s, ok
}

// Keys returns the child keys in sorted order.
func (n *Node) Keys() []string {
	if !n.IsMapping() {
		return nil
	}
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromMap converts a decoded document (JSON, YAML, koanf) into a tree.
// Nested map[string]any and map[any]any become mappings; everything else is a
// leaf and is kept as-is.
func FromMap(m map[string]any) *Node {
	root := Group(make(map[string]*Node, len(m)))
	for k, v := range m {
		root.Children[k] = fromValue(v)
	}
	return root
}

func fromValue(v any) *Node {
	switch val := v.(type) {
	case *Node:
		return val
	case map[string]any:
		return FromMap(val)
	case map[any]any:
		children := make(map[string]*Node, len(val))
		for k, child := range val {
			children[fmt.Sprint(k)] = fromValue(child)
		}
		return Group(children)
	default:
		return Leaf(val)
	}
}

// Flatten turns a nested tree into a flat name → literal map.
// Nested keys are joined with "-" and a DEFAULT key collapses to its parent
// name: {a: {b: "#fff", DEFAULT: "#000"}} becomes {"a-b": "#fff", "a": "#000"}.
// Leaves are passed through unchanged, including non-string values.
// The tree must be acyclic. Keys are visited in sorted order, so when two
// paths flatten to the same name the later one in that order wins.
func Flatten(tree *Node) map[string]any {
	flat := make(map[string]any)
	if !tree.IsMapping() {
		return flat
	}

	for _, key := range tree.Keys() {
		child := tree.Children[key]
		if !child.IsMapping() {
			flat[key] = leafValue(child)
			continue
		}
		sub := Flatten(child)
		names := make([]string, 0, len(sub))
		for name := range sub {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if name == DefaultKey {
				flat[key] = sub[name]
			} else {
				flat[key+"-"+name] = sub[name]
			}
		}
	}

	return flat
}

func leafValue(n *Node) any {
	if n == nil {
		return nil
	}
	return n.Value
}

// Theme exposes read-only lookups over the colors tree.
type Theme struct {
	colors *Node
}

// New wraps a colors tree. A nil tree yields an empty theme.
func New(colors *Node) *Theme {
	if colors == nil {
		colors = Group(nil)
	}
	return &Theme{colors: colors}
}

// Colors returns the underlying tree.
func (t *Theme) Colors() *Node {
	return t.colors
}

// Group returns the named color group when it exists and is a mapping.
func (t *Theme) Group(name string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	n, ok := t.colors.Children[name]
	if !ok || !n.IsMapping() {
		return nil, false
	}
	return n, true
}

// Color looks up colors[name][shade]. It fails when the group or shade is
// missing, or when the shade is not a string literal.
func (t *Theme) Color(name, shade string) (string, bool) {
	group, ok := t.Group(name)
	if !ok {
		return "", false
	}
	return group.Children[shade].Literal()
}

// Flat returns the flattened colors.
func (t *Theme) Flat() map[string]any {
	if t == nil {
		return map[string]any{}
	}
	return Flatten(t.colors)
}

// Merge overlays the top-level groups of overlay onto base and returns a new
// theme. Neither input is modified.
func Merge(base, overlay *Theme) *Theme {
	merged := Group(nil)
	for _, t := range []*Theme{base, overlay} {
		if t == nil {
			continue
		}
		for k, v := range t.colors.Children {
			merged.Children[k] = v
		}
	}
	return New(merged)
}
