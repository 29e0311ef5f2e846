package cowtrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, it func(func(string, any) bool)) ([]string, map[string]any) {
	t.Helper()
	var keys []string
	vals := make(map[string]any)
	for k, v := range it {
		keys = append(keys, k)
		vals[k] = v
	}
	return keys, vals
}

func TestScan_Order(t *testing.T) {
	// Inserted out of order; Scan yields byte-lexicographic order.
	tr := New()
	for i, k := range []string{"dog", "a", "cat", "car", "ca", "b"} {
		tr = Put(tr, k, i)
	}

	keys, vals := collect(t, tr.Scan())
	assert.Equal(t, []string{"a", "b", "ca", "car", "cat", "dog"}, keys)
	assert.Equal(t, 4, vals["ca"])
	assert.Equal(t, 3, vals["car"])
}

func TestScan_Empty(t *testing.T) {
	keys, _ := collect(t, New().Scan())
	assert.Empty(t, keys)
}

func TestScan_EarlyStop(t *testing.T) {
	tr := New()
	for _, k := range []string{"a", "b", "c", "d"} {
		tr = Put(tr, k, 0)
	}

	var seen int
	for range tr.Scan() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestScanPrefix(t *testing.T) {
	tr := New()
	for i, k := range []string{"car", "cat", "ca", "dog", "c"} {
		tr = Put(tr, k, i)
	}

	keys, _ := collect(t, tr.ScanPrefix("ca"))
	assert.Equal(t, []string{"ca", "car", "cat"}, keys)

	// A prefix that is itself a value-bearing key yields itself.
	keys, _ = collect(t, tr.ScanPrefix("cat"))
	assert.Equal(t, []string{"cat"}, keys)

	// Absent prefix yields nothing.
	keys, _ = collect(t, tr.ScanPrefix("dx"))
	assert.Empty(t, keys)

	// Empty prefix is a full scan.
	keys, _ = collect(t, tr.ScanPrefix(""))
	assert.Equal(t, []string{"c", "ca", "car", "cat", "dog"}, keys)
}

func TestScan_SnapshotStability(t *testing.T) {
	t1 := Put(New(), "a", 1)
	t1 = Put(t1, "b", 2)

	// Mutating derived versions cannot change what t1's scan observes.
	t2 := Put(t1, "c", 3)
	t2 = t2.Remove("a")

	keys, vals := collect(t, t1.Scan())
	require.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, 1, vals["a"])

	keys, _ = collect(t, t2.Scan())
	assert.Equal(t, []string{"b", "c"}, keys)
}
