package cowtrie

import "maps"

// node is one trie level: a byte-labeled child map and an optional erased
// value. Nodes are shared by reference across versions and are immutable
// once published; the only mutation ever performed happens on freshly
// allocated clones inside a single Put or Remove call, before the new root
// escapes through the returned Trie.
type node struct {
	children map[byte]*node

	// hasValue discriminates the value-bearing variant from a purely
	// structural node. The value field alone cannot, because a stored nil
	// interface is a legitimate value.
	value    any
	hasValue bool
}

// clone returns a shallow copy: a fresh children map holding the same child
// pointers, and the same erased value reference. Child nodes themselves are
// shared, which is what makes path copying cheap. Cloning a nil node yields
// a fresh empty node, for when a walk has left the existing tree.
func (n *node) clone() *node {
	if n == nil {
		return &node{}
	}
	return &node{
		children: maps.Clone(n.children),
		value:    n.value,
		hasValue: n.hasValue,
	}
}

// empty reports whether the node carries neither a value nor children.
// Published versions never contain such a node: Remove unlinks them.
func (n *node) empty() bool {
	return !n.hasValue && len(n.children) == 0
}
