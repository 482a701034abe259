package xmaps

// Merge combines two maps into a freshly allocated one. On key collision the
// value from primary wins and the secondary value is discarded. Nil inputs
// are treated as empty; neither input is mutated.
func Merge[M ~map[K]V, K comparable, V any](primary, secondary M) M {
	if primary == nil && secondary == nil {
		return nil
	}

	res := make(M, len(primary)+len(secondary))
	for k, v := range secondary {
		res[k] = v
	}
	for k, v := range primary {
		res[k] = v
	}
	return res
}
