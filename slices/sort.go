package slices

import (
	"cmp"
	"slices"
)

// SortBy sorts a slice in place using given sortKey.
func SortBy[S ~[]E, E any, U cmp.Ordered](x S, sortKey func(E) U) {
	slices.SortFunc(x, func(a, b E) int { return cmp.Compare(sortKey(a), sortKey(b)) })
}

// SortDescBy sorts a slice in place using given sortKey in descending order.
func SortDescBy[S ~[]E, E any, U cmp.Ordered](x S, sortKey func(E) U) {
	slices.SortFunc(x, func(a, b E) int { return cmp.Compare(sortKey(b), sortKey(a)) })
}
