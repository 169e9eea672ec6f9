package falsify

import "fmt"

// Built-in generators and simplifiers for common types. Anything beyond
// these is expected to be composed by the caller out of NewGenerator,
// Map and FlatMap, with a Simplifier upholding the well-foundedness
// contract documented on the type.

// Int64 generates uniform values over the full int64 range.
func Int64() Generator[int64] {
	return NewGenerator(func(src *Source) int64 {
		return int64(src.Uint64())
	})
}

// Int64Range generates uniform values in [lo, hi], both inclusive.
// Panics if lo > hi.
func Int64Range(lo, hi int64) Generator[int64] {
	if lo > hi {
		panic(fmt.Sprintf("falsify: Int64Range with lo %d > hi %d", lo, hi))
	}
	return NewGenerator(func(src *Source) int64 {
		span := uint64(hi-lo) + 1 // 0 means the full 2^64 span
		return lo + int64(src.uint64n(span))
	})
}

// Bool generates booleans.
func Bool() Generator[bool] {
	return NewGenerator(func(src *Source) bool {
		return src.Bool()
	})
}

// Float64 generates values in [0.0, 1.0).
func Float64() Generator[float64] {
	return NewGenerator(func(src *Source) float64 {
		return src.Float64()
	})
}

// OneOf picks uniformly among the given alternatives, consuming one
// draw per value. Panics if no alternatives are given.
func OneOf[T any](choices ...T) Generator[T] {
	if len(choices) == 0 {
		panic("falsify: OneOf needs at least one choice")
	}
	choices = append([]T(nil), choices...)
	return NewGenerator(func(src *Source) T {
		return choices[src.IntN(len(choices))]
	})
}

// SliceOf generates slices of 0 to maxLen elements, drawing the length
// first and then each element in order. Panics if maxLen < 0.
func SliceOf[T any](elem Generator[T], maxLen int) Generator[[]T] {
	if maxLen < 0 {
		panic(fmt.Sprintf("falsify: SliceOf with negative maxLen %d", maxLen))
	}
	return NewGenerator(func(src *Source) []T {
		out := make([]T, src.IntN(maxLen+1))
		for i := range out {
			out[i] = elem.Generate(src)
		}
		return out
	})
}

// Int64Simplifier proposes candidates strictly closer to zero, most
// aggressive first: 0, then v minus successive halvings down to v-1,
// each followed by its sign mirror. For 10 the candidates are
// 0, 5, -5, 8, -8, 9, -9. Every candidate has strictly smaller
// magnitude than v, so Minimize always terminates on it.
func Int64Simplifier(v int64) []int64 {
	if v == 0 {
		return nil
	}
	candidates := []int64{0}
	for half := v / 2; half != 0; half /= 2 {
		c := v - half
		candidates = append(candidates, c, -c)
	}
	return candidates
}

// SliceSimplifier shrinks slices by dropping before fiddling: first the
// empty slice, then each half, then each single element removed, and
// only then element-wise simplification with elem (holding the rest
// fixed). elem may be nil to shrink structure only.
func SliceSimplifier[T any](elem Simplifier[T]) Simplifier[[]T] {
	return func(v []T) [][]T {
		if len(v) == 0 {
			return nil
		}
		candidates := [][]T{{}}
		if len(v) > 1 {
			mid := len(v) / 2
			candidates = append(candidates,
				append([]T(nil), v[mid:]...),
				append([]T(nil), v[:mid]...))
			for i := range v {
				c := make([]T, 0, len(v)-1)
				c = append(c, v[:i]...)
				c = append(c, v[i+1:]...)
				candidates = append(candidates, c)
			}
		}
		if elem != nil {
			for i := range v {
				for _, ec := range elem(v[i]) {
					c := append([]T(nil), v...)
					c[i] = ec
					candidates = append(candidates, c)
				}
			}
		}
		return candidates
	}
}
