package xmaps

// MapValues applies given function to every value of the map, keeping keys.
func MapValues[M ~map[K]V, K comparable, V, T any](m M, fn func(V) T) map[K]T {
	if m == nil {
		return nil
	}

	res := make(map[K]T, len(m))
	for k, v := range m {
		res[k] = fn(v)
	}
	return res
}

// MapValuesE is like MapValues, but stops at the first transform error.
// The error is returned to the caller unchanged.
func MapValuesE[M ~map[K]V, K comparable, V, T any](m M, fn func(V) (T, error)) (map[K]T, error) {
	if m == nil {
		return nil, nil
	}

	res := make(map[K]T, len(m))
	for k, v := range m {
		transformed, err := fn(v)
		if err != nil {
			return nil, err
		}
		res[k] = transformed
	}
	return res, nil
}

// CompactMapValues applies given function to every value of the map and drops
// the keys for which fn reports no result.
func CompactMapValues[M ~map[K]V, K comparable, V, T any](m M, fn func(V) (T, bool)) map[K]T {
	if m == nil {
		return nil
	}

	res := make(map[K]T, len(m))
	for k, v := range m {
		if transformed, ok := fn(v); ok {
			res[k] = transformed
		}
	}
	return res
}
