package slices

// RemoveAt deletes the element at given index in place, shifting later
// elements left. An index outside the valid range leaves the slice untouched
// and reports false.
func RemoveAt[S ~[]T, T any](s *S, index int) (T, bool) {
	var zero T
	if s == nil || index < 0 || index >= len(*s) {
		return zero, false
	}

	removed := (*s)[index]
	*s = append((*s)[:index], (*s)[index+1:]...)
	return removed, true
}

// RemoveFirst deletes the first element matching given predicate in place.
// Without a match the slice is left untouched and false is reported.
func RemoveFirst[S ~[]T, T any](s *S, pred func(T) bool) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}

	for i, v := range *s {
		if pred(v) {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return v, true
		}
	}
	return zero, false
}
