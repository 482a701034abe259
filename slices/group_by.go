package slices

// GroupBy splits slice values into groups keyed by the result of given key function.
// Values within each group preserve their original relative order; iteration
// order of the groups themselves is unspecified.
func GroupBy[S ~[]T, T any, K comparable](s S, key func(T) K) map[K]S {
	if s == nil {
		return nil
	}

	res := make(map[K]S)
	for _, v := range s {
		k := key(v)
		res[k] = append(res[k], v)
	}
	return res
}
