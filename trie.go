package cowtrie

import "maps"

// Trie is an immutable handle on one version of the map. The zero value is
// the empty trie. Copies are cheap and share the same root.
//
// Put and Remove never modify the receiver's version; they return a new
// Trie that shares every node not on the mutated key's path with the
// receiver.
type Trie struct {
	root  *node
	count int
}

// New returns an empty trie. It is equivalent to the zero value.
func New() Trie {
	return Trie{}
}

// Len returns the number of keys in this version.
func (t Trie) Len() int {
	return t.count
}

// getNode walks key one byte at a time from the root and returns the node
// the full key resolves to, or nil if the path does not exist. The
// returned node may be purely structural (no value).
func (t Trie) getNode(key string) *node {
	cur := t.root
	for i := 0; i < len(key); i++ {
		if cur == nil {
			return nil
		}
		next, ok := cur.children[key[i]]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Has reports whether key maps to a value in this version, regardless of
// the value's type.
func (t Trie) Has(key string) bool {
	n := t.getNode(key)
	return n != nil && n.hasValue
}

// Get returns the value stored under key in this version. It returns
// ok=false when the key is absent, when the node at key carries no value,
// and when the stored value is not of type T; the three cases are
// deliberately indistinguishable to the caller.
func Get[T any](t Trie, key string) (T, bool) {
	n := t.getNode(key)
	if n == nil || !n.hasValue {
		var zero T
		return zero, false
	}
	v, ok := n.value.(T)
	return v, ok
}

// Put returns a new version in which key maps to value, leaving the
// receiver's version untouched. Only the nodes on the key's path are
// copied; every other node is shared with the receiver.
//
// The trie takes ownership of value: callers must not mutate memory
// reachable through it after Put returns.
//
// An empty key is a no-op returning the receiver unchanged; the root
// itself cannot carry a value.
func Put[T any](t Trie, key string, value T) Trie {
	if key == "" {
		return t
	}
	root, added := putRec(t.root, key, value)
	count := t.count
	if added {
		count++
	}
	return Trie{root: root, count: count}
}

// putRec rebuilds the path for key below n, which is nil once the walk has
// left the existing tree. It returns the replacement node and whether a
// new key came into existence (as opposed to an overwrite).
func putRec(n *node, key string, value any) (*node, bool) {
	if key == "" {
		// Terminal: a brand-new value-bearing node that keeps whatever
		// children the position already had, so deeper keys stay reachable.
		nn := &node{value: value, hasValue: true}
		if n == nil {
			return nn, true
		}
		nn.children = maps.Clone(n.children)
		return nn, !n.hasValue
	}

	nn := n.clone()
	var old *node
	if n != nil {
		old = n.children[key[0]]
	}
	child, added := putRec(old, key[1:], value)
	if nn.children == nil {
		nn.children = make(map[byte]*node, 1)
	}
	nn.children[key[0]] = child
	return nn, added
}

// Remove returns a new version with key absent, leaving the receiver's
// version untouched. Removing an empty key, a key the version does not
// contain, or anything from the empty trie is a no-op that returns the
// receiver unchanged (the very same root, not merely an equal one).
//
// Stripping a value can leave a node with neither a value nor children;
// Remove unlinks every such node, cascading up to and including the root,
// so no published version ever contains an empty interior node.
func (t Trie) Remove(key string) Trie {
	if key == "" || t.root == nil {
		return t
	}
	root, removed := removeRec(t.root, key)
	if !removed {
		return t
	}
	return Trie{root: root, count: t.count - 1}
}

// removeRec returns the replacement for n after removing key below it, or
// nil when n itself must be unlinked, along with whether a value was
// actually removed. When nothing was removed, n is returned as-is and the
// caller propagates the original tree untouched.
func removeRec(n *node, key string) (*node, bool) {
	if key == "" {
		if !n.hasValue {
			return n, false
		}
		if len(n.children) == 0 {
			return nil, true
		}
		// Strip the value, keep the descendants reachable.
		return &node{children: maps.Clone(n.children)}, true
	}

	child, ok := n.children[key[0]]
	if !ok {
		return n, false
	}
	newChild, removed := removeRec(child, key[1:])
	if !removed {
		return n, false
	}

	nn := n.clone()
	if newChild == nil {
		delete(nn.children, key[0])
		if nn.empty() {
			return nil, true
		}
	} else {
		nn.children[key[0]] = newChild
	}
	return nn, true
}
