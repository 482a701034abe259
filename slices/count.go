package slices

// Count returns the number of slice values matching given predicate.
func Count[S ~[]T, T any](s S, pred func(T) bool) int {
	var n int
	for _, v := range s {
		if pred(v) {
			n++
		}
	}
	return n
}

// CountE is like Count, but stops at the first predicate error.
// The error is returned to the caller unchanged and no partial count is reported.
func CountE[S ~[]T, T any](s S, pred func(T) (bool, error)) (int, error) {
	var n int
	for _, v := range s {
		ok, err := pred(v)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}
