package falsify

// Generator produces one value of T per draw from a Source.
//
// Generators must be pure: a produced value may depend only on the
// draws taken from the Source, never on hidden mutable state, so that
// re-seeding replays the exact same values. Each Generate call both
// produces a value and advances the Source for the next draw.
type Generator[T any] struct {
	draw func(*Source) T
}

// NewGenerator wraps a draw function into a Generator.
func NewGenerator[T any](draw func(*Source) T) Generator[T] {
	return Generator[T]{draw: draw}
}

// Generate draws one value, advancing src.
func (g Generator[T]) Generate(src *Source) T {
	return g.draw(src)
}

// Sequence returns the lazy infinite sequence of values this generator
// produces from seed. Two sequences built from the same seed are equal
// element-wise for any prefix length.
func (g Generator[T]) Sequence(seed int64) *Sequence[T] {
	return &Sequence[T]{src: NewSource(seed), gen: g}
}

// Map transforms every value of g with f.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return NewGenerator(func(src *Source) B {
		return f(g.Generate(src))
	})
}

// FlatMap feeds every value of g into f and draws from the resulting
// generator. The outer and inner draws consume the same Source, in that
// order, so composition stays deterministic under a seed.
func FlatMap[A, B any](g Generator[A], f func(A) Generator[B]) Generator[B] {
	return NewGenerator(func(src *Source) B {
		return f(g.Generate(src)).Generate(src)
	})
}

// Const always produces v and consumes no randomness.
func Const[T any](v T) Generator[T] {
	return NewGenerator(func(*Source) T {
		return v
	})
}

// Sequence is a forward-only view of the infinite value stream a
// generator produces from one seed. It is single-pass: it never rewinds
// and each Next consumes exactly the random state of one draw. Restart
// a sequence by constructing a new one from the same seed.
type Sequence[T any] struct {
	src *Source
	gen Generator[T]
	n   int
}

// Next draws the next value.
func (s *Sequence[T]) Next() T {
	s.n++
	return s.gen.Generate(s.src)
}

// Drawn reports how many values have been drawn so far.
func (s *Sequence[T]) Drawn() int {
	return s.n
}

// Take draws the next n values into a slice.
func (s *Sequence[T]) Take(n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}
