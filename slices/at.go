package slices

// At returns the element at given index.
// An index outside the valid range yields the zero value and false, never a panic.
func At[S ~[]T, T any](s S, index int) (T, bool) {
	if index < 0 || index >= len(s) {
		var zero T
		return zero, false
	}
	return s[index], true
}
