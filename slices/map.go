package slices

// Map applies given function to every value of slice.
func Map[S ~[]T, T, M any](s S, fn func(T) M) []M {
	if s == nil {
		return []M(nil)
	}

	res := make([]M, len(s))
	for i, v := range s {
		res[i] = fn(v)
	}
	return res
}

// MapE applies given function to every value of slice, stopping at the first
// error. The error is returned to the caller unchanged.
func MapE[S ~[]T, T, M any](s S, fn func(T) (M, error)) ([]M, error) {
	if s == nil {
		return []M(nil), nil
	}

	res := make([]M, len(s))
	for i, v := range s {
		transformed, err := fn(v)
		if err != nil {
			return nil, err
		}
		res[i] = transformed
	}
	return res, nil
}
