package slices

// AllUniqueBy reports whether no two slice values share the same key.
// An empty or nil slice is trivially unique.
func AllUniqueBy[S ~[]T, T any, K comparable](s S, key func(T) K) bool {
	seen := make(map[K]struct{}, len(s))
	for _, v := range s {
		k := key(v)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}

// DedupBy drops values whose key has already been seen, keeping the first
// occurrence per key. It operates with a copy of given slice; relative order
// of the kept values is preserved.
func DedupBy[S ~[]T, T any, K comparable](s S, key func(T) K) S {
	if s == nil {
		return nil
	}

	seen := make(map[K]struct{}, len(s))
	res := make([]T, 0, len(s))
	for _, v := range s {
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, v)
	}
	return res
}
