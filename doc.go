// Package cowtrie implements a persistent (immutable, copy-on-write) trie
// mapping string keys to values of arbitrary types.
//
// Every mutation produces a new logical version of the trie and leaves
// every previously returned version fully readable. Unrelated subtrees are
// shared between versions rather than copied, so the cost of a mutation is
// bounded by the length of the affected key, not the size of the map.
//
// # Quick Start
//
//	t0 := cowtrie.New()
//	t1 := cowtrie.Put(t0, "cat", 1)
//	t2 := cowtrie.Put(t1, "car", 2)
//	t3 := t2.Remove("cat")
//
//	v, ok := cowtrie.Get[int](t2, "cat") // 1, true  — t2 is unaffected by t3
//	_, ok = cowtrie.Get[int](t3, "cat")  // false
//
// # Heterogeneous Values
//
// Different keys may store values of different types. Get recovers the
// stored type with a runtime check and reports a mismatched type the same
// way as an absent key:
//
//	t := cowtrie.Put(cowtrie.New(), "n", 42)
//	t = cowtrie.Put(t, "s", "hello")
//
//	_, ok := cowtrie.Get[string](t, "n") // false: stored as int
//
// # Concurrency
//
// A Trie value is an immutable version handle. Copying one is cheap (the
// copy shares the root), and any number of goroutines may read any number
// of published versions concurrently without locking; immutability is the
// sole synchronization mechanism. Deriving version N+1 from a fixed
// version N is a pure computation — coordinating which version is
// "current" is the caller's concern.
package cowtrie
