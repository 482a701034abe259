package slices

// Chunk splits slice values into consecutive chunks of given fixed size.
// The last chunk may be shorter; a non-positive size yields an empty result.
// Chunks share the backing array with the original slice.
func Chunk[S ~[]T, T any](s S, size int) []S {
	if size <= 0 {
		return []S{}
	}

	chunks := make([]S, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := start + size
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[start:end:end])
	}
	return chunks
}
