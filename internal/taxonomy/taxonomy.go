// Package taxonomy defines the fixed category tree products are
// classified into: top-level categories, subcategories and optional
// sub-subcategories, each with a stable machine key.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/farmaon/farmaclass/internal/common"
)

// MaxDepth is the maximum allowed depth of the category tree.
const MaxDepth = 3

// Node is one entry in the category tree.
type Node struct {
	// Key is the stable machine identifier (e.g. "dermo.face"),
	// unique and never reused for a different concept.
	Key string `mapstructure:"key"`
	// DisplayName is the human label (e.g. "Fytyre").
	DisplayName string `mapstructure:"display_name"`
	// ParentKey references the parent node; empty for top-level categories.
	ParentKey string `mapstructure:"parent"`
}

// Registry is the validated, immutable category tree. It is built once
// at process start; a corrupt definition is a fatal startup error.
type Registry struct {
	nodes    map[string]Node
	children map[string][]string
	order    []string
}

// NewRegistry validates the node list and builds a registry.
// It rejects duplicate keys, dangling parent references, cycles and
// trees deeper than MaxDepth.
func NewRegistry(nodes []Node) (*Registry, error) {
	r := &Registry{
		nodes:    make(map[string]Node, len(nodes)),
		children: make(map[string][]string),
		order:    make([]string, 0, len(nodes)),
	}

	for _, n := range nodes {
		if strings.TrimSpace(n.Key) == "" {
			return nil, fmt.Errorf("%w: node with empty key (display name %q)",
				common.ErrInvalidTaxonomy, n.DisplayName)
		}
		if _, exists := r.nodes[n.Key]; exists {
			return nil, fmt.Errorf("%w: duplicate key %q", common.ErrInvalidTaxonomy, n.Key)
		}
		r.nodes[n.Key] = n
		r.order = append(r.order, n.Key)
	}

	for _, n := range r.nodes {
		if n.ParentKey == "" {
			continue
		}
		if _, ok := r.nodes[n.ParentKey]; !ok {
			return nil, fmt.Errorf("%w: node %q references unknown parent %q",
				common.ErrInvalidTaxonomy, n.Key, n.ParentKey)
		}
		r.children[n.ParentKey] = append(r.children[n.ParentKey], n.Key)
	}

	for _, key := range r.order {
		depth, err := r.depthOf(key)
		if err != nil {
			return nil, err
		}
		if depth > MaxDepth {
			return nil, fmt.Errorf("%w: node %q exceeds maximum depth of %d",
				common.ErrInvalidTaxonomy, key, MaxDepth)
		}
	}

	for parent := range r.children {
		sort.Strings(r.children[parent])
	}

	return r, nil
}

// depthOf walks the parent chain. A chain longer than the node count
// means a cycle.
func (r *Registry) depthOf(key string) (int, error) {
	depth := 0
	for current := key; current != ""; {
		depth++
		if depth > len(r.nodes) {
			return 0, fmt.Errorf("%w: cycle detected at node %q", common.ErrInvalidTaxonomy, key)
		}
		current = r.nodes[current].ParentKey
	}
	return depth, nil
}

// Resolve returns the node for a key, or common.ErrNotFound.
func (r *Registry) Resolve(key string) (Node, error) {
	n, ok := r.nodes[key]
	if !ok {
		return Node{}, fmt.Errorf("taxonomy node %q: %w", key, common.ErrNotFound)
	}
	return n, nil
}

// IsValid reports whether a key exists in the registry.
func (r *Registry) IsValid(key string) bool {
	_, ok := r.nodes[key]
	return ok
}

// Children returns the direct children of a node, sorted by key.
func (r *Registry) Children(key string) []Node {
	keys := r.children[key]
	out := make([]Node, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.nodes[k])
	}
	return out
}

// Roots returns the top-level categories in definition order.
func (r *Registry) Roots() []Node {
	var out []Node
	for _, key := range r.order {
		if r.nodes[key].ParentKey == "" {
			out = append(out, r.nodes[key])
		}
	}
	return out
}

// All returns every node in definition order.
func (r *Registry) All() []Node {
	out := make([]Node, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.nodes[key])
	}
	return out
}

// Path returns the chain from the root category down to the node.
func (r *Registry) Path(key string) ([]Node, error) {
	n, err := r.Resolve(key)
	if err != nil {
		return nil, err
	}

	var chain []Node
	for {
		chain = append([]Node{n}, chain...)
		if n.ParentKey == "" {
			return chain, nil
		}
		n = r.nodes[n.ParentKey]
	}
}

// Len returns the number of nodes.
func (r *Registry) Len() int {
	return len(r.nodes)
}
