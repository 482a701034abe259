// Package slices provides generic utility functions for working with slices in Go.
//
// It extends the standard library with the transformation and aggregation
// primitives the dashboard core is built from: safe indexed access, numeric
// aggregation (Sum, Average), grouping, de-duplication, fixed-size chunking,
// and order-preserving removal. Operations are total: out-of-range indices and
// empty inputs produce defined results, never panics. Only the caller-supplied
// functions of the E-variants can fail, and their errors pass through unchanged.
package slices
