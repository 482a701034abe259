package slices

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds up all values of slice. An empty or nil slice sums to zero.
func Sum[S ~[]N, N Number](s S) N {
	var sum N
	for _, v := range s {
		sum += v
	}
	return sum
}

// SumBy transforms given slice values to Number and sums them up.
func SumBy[S ~[]T, T any, N Number](s S, fn func(T) N) N {
	if len(s) == 0 || fn == nil {
		return 0
	}

	var sum N
	for _, v := range s {
		sum += fn(v)
	}
	return sum
}

// Average returns the arithmetic mean of slice values as float64.
// An empty or nil slice averages to 0 rather than dividing by zero.
func Average[S ~[]N, N Number](s S) float64 {
	if len(s) == 0 {
		return 0
	}

	var sum float64
	for _, v := range s {
		sum += float64(v)
	}
	return sum / float64(len(s))
}

// AverageBy transforms given slice values to Number and returns their mean.
func AverageBy[S ~[]T, T any, N Number](s S, fn func(T) N) float64 {
	if len(s) == 0 || fn == nil {
		return 0
	}

	var sum float64
	for _, v := range s {
		sum += float64(fn(v))
	}
	return sum / float64(len(s))
}
