// Package dashboard aggregates raw service and check records into
// render-ready view models.
//
// Callers feed it plain record slices and read back an Overview with groups,
// status rollups and preformatted captions. The package performs no I/O
// besides optional debug logging and never retains or mutates its inputs, so
// a single Builder is safe to share between concurrent refreshes.
package dashboard
