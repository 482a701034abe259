package xmaps

import (
	"cmp"
	"slices"

	"golang.org/x/exp/maps"
)

// ValueOr returns the value stored under key, or the result of produce when
// the key is absent. produce is invoked lazily, only on a miss; a nil produce
// yields the zero value.
func ValueOr[M ~map[K]V, K comparable, V any](m M, key K, produce func() V) V {
	if v, ok := m[key]; ok {
		return v
	}
	if produce == nil {
		var zero V
		return zero
	}
	return produce()
}

// SortedKeys returns the keys of the map in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
