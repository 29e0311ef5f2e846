package cowtrie

import (
	"iter"
	"maps"
	"slices"
)

// Scan returns an iterator over this version's key/value pairs in
// byte-lexicographic key order. Values are yielded with their erased type;
// callers recover concrete types per key the same way Get does.
//
// The iteration runs over an immutable version, so it is always
// consistent, even while other goroutines derive new versions from the
// same trie.
func (t Trie) Scan() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		t.root.scan(nil, yield)
	}
}

// ScanPrefix returns an iterator over the pairs whose key starts with
// prefix, in byte-lexicographic key order. ScanPrefix("") is Scan.
func (t Trie) ScanPrefix(prefix string) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		t.getNode(prefix).scan([]byte(prefix), yield)
	}
}

// scan walks the subtree in sorted child order, yielding the accumulated
// key bytes at every value-bearing node. Only one root-to-leaf path is
// active at a time, so sharing the key buffer across siblings is safe; the
// string conversion at yield time copies it.
func (n *node) scan(key []byte, yield func(string, any) bool) bool {
	if n == nil {
		return true
	}
	if n.hasValue {
		if !yield(string(key), n.value) {
			return false
		}
	}
	for _, b := range slices.Sorted(maps.Keys(n.children)) {
		if !n.children[b].scan(append(key, b), yield) {
			return false
		}
	}
	return true
}
