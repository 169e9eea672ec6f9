package falsify

// Guarantee asserts that a run's generator actually produced at least
// one input of a given class, e.g. "at least one empty slice" or
// "at least one negative value". A run keeps drawing past its requested
// iteration count until every guarantee has been satisfied, bounded by
// Config.GuaranteeLimit.
//
// Guarantees are about the generated inputs, not about the property:
// they are checked for every input even when the property fails on it.
type Guarantee[T any] struct {
	// Name identifies the guarantee in GuaranteeError messages.
	Name string

	// Holds reports whether input belongs to the guaranteed class.
	Holds func(input T) bool
}

// Fuzzer bundles everything needed to drive property runs over T: how
// to generate inputs, how to shrink a failing one, and which input
// classes a run must have exercised.
//
// A Fuzzer is immutable and may be reused across any number of runs;
// all per-run state lives inside Evaluate.
type Fuzzer[T any] struct {
	gen        Generator[T]
	simplify   Simplifier[T]
	guarantees []Guarantee[T]
}

// NewFuzzer creates a Fuzzer. simplify may be nil to disable shrinking,
// in which case a failing run reports the originally drawn input.
func NewFuzzer[T any](gen Generator[T], simplify Simplifier[T], guarantees ...Guarantee[T]) *Fuzzer[T] {
	return &Fuzzer[T]{
		gen:        gen,
		simplify:   simplify,
		guarantees: append([]Guarantee[T](nil), guarantees...),
	}
}

// Generator returns the fuzzer's generator.
func (f *Fuzzer[T]) Generator() Generator[T] {
	return f.gen
}
