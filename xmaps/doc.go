// Package xmaps provides generic utility functions for working with maps.
//
// It complements package slices with the mapping-side primitives of the
// dashboard core: collision-aware merge, lazy defaults, deterministic key
// listing, and value transformation with a compact (key-dropping) variant.
// Result maps are always freshly allocated; inputs are never mutated.
package xmaps
