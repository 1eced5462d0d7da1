package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/nsconf/syntax"
	"github.com/0xalexb/nsconf/value"
)

// ErrTreeConflict is returned when a variable and a namespace share a name in
// the same scope, so they cannot both become keys of one mapping.
var ErrTreeConflict = errors.New("variable and namespace share a name")

type node struct {
	keys     []string
	children map[string]*node
	values   map[string]any
}

func newNode() *node {
	return &node{children: map[string]*node{}, values: map[string]any{}}
}

func (n *node) child(name string) (*node, error) {
	if _, ok := n.values[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrTreeConflict, name)
	}

	c, ok := n.children[name]
	if !ok {
		c = newNode()
		n.children[name] = c
		n.keys = append(n.keys, name)
	}

	return c, nil
}

func (n *node) set(name string, v any) error {
	if _, ok := n.children[name]; ok {
		return fmt.Errorf("%w: %q", ErrTreeConflict, name)
	}

	if _, ok := n.values[name]; ok {
		return nil
	}

	n.values[name] = v
	n.keys = append(n.keys, name)

	return nil
}

func (n *node) mapSlice() yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(n.keys))

	for _, key := range n.keys {
		if c, ok := n.children[key]; ok {
			out = append(out, yaml.MapItem{Key: key, Value: c.mapSlice()})

			continue
		}

		out = append(out, yaml.MapItem{Key: key, Value: n.values[key]})
	}

	return out
}

// Tree returns the variables under the namespace at path as an ordered mapping:
// namespaces become nested mappings and variables their converted values.
// An empty path selects the whole document.
func (d *Document) Tree(path string) (yaml.MapSlice, error) {
	prefix := ""

	if path != "" {
		_, err := syntax.FindNamespace(d.source, path)
		if err != nil {
			return nil, fmt.Errorf("namespace %q: %w", path, err)
		}

		prefix = path + value.PathSeparator
	}

	root := newNode()

	for _, variable := range d.vars {
		rel, ok := strings.CutPrefix(variable.Path(), prefix)
		if !ok {
			continue
		}

		converted, err := treeValue(variable)
		if err != nil {
			return nil, err
		}

		segments := strings.Split(rel, value.PathSeparator)
		current := root

		for _, segment := range segments[:len(segments)-1] {
			current, err = current.child(segment)
			if err != nil {
				return nil, fmt.Errorf("variable %q: %w", variable.Path(), err)
			}
		}

		err = current.set(segments[len(segments)-1], converted)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", variable.Path(), err)
		}
	}

	return root.mapSlice(), nil
}

// treeValue converts variable for the tree. An empty scalar of a non-string
// type becomes null.
func treeValue(variable value.Variable) (any, error) {
	if !variable.IsArray() && variable.Type() != value.String && variable.RawValue() == "" {
		return nil, nil //nolint:nilnil // null is the value
	}

	return variable.Interface()
}

// MarshalYAML implements yaml.InterfaceMarshaler with the whole document tree.
func (d *Document) MarshalYAML() (any, error) {
	return d.Tree("")
}
