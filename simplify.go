package falsify

// Simplifier proposes simpler alternatives to a value. Given v it
// returns a finite candidate slice, ordered most aggressive reduction
// first; the shrinking engine commits to the first candidate that still
// falsifies the property, so earlier candidates should cut deeper.
//
// Candidates must be strictly smaller than v under some well-founded
// measure (structural size, distance from zero). The engine performs no
// cycle detection, so a simplifier that can reach a value from itself
// makes Minimize loop forever.
//
// A nil Simplifier disables shrinking for the type.
type Simplifier[T any] func(v T) []T

// Minimize runs a greedy local descent from x0: scan the candidates in
// order, move to the first one that still falsifies, rescan from the
// new value, and stop when no candidate falsifies. It returns the final
// value and the number of committed steps.
//
// The result is a local minimum under the candidate relation, not a
// global minimum over all of T; exhaustive search is intentionally
// traded away for tractability. If no candidate of x0 falsifies,
// including when there are no candidates at all, x0 itself is returned.
func Minimize[T any](simplify Simplifier[T], x0 T, stillFalsifying func(T) bool) (T, int) {
	if simplify == nil {
		return x0, 0
	}

	current := x0
	shrinks := 0
	for {
		improved := false
		for _, candidate := range simplify(current) {
			if stillFalsifying(candidate) {
				current = candidate
				shrinks++
				improved = true
				break
			}
		}
		if !improved {
			return current, shrinks
		}
	}
}
