// Package falsify is a property-based testing engine: describe how to
// generate arbitrary values of a type, state a property that must hold
// for all of them, and falsify evaluates the property against a stream
// of generated inputs. When an input falsifies the property, falsify
// shrinks it to a minimal counterexample before reporting it.
//
// # Overview
//
// Example-based tests check the inputs you thought of. Property-based
// tests check the invariant itself:
//
//   - reversing a slice twice yields the original
//   - encoding then decoding is the identity
//   - a sorted slice is a permutation of its input
//
// The package components:
//
//   - Source / Sequence  - deterministic seeded random streams
//   - Generator[T]       - one value of T per draw, composable
//   - Simplifier[T]      - candidate-based shrinking per type
//   - Guarantee[T]       - "the generator actually produced X" assertions
//   - Fuzzer[T]          - generator + simplifier + guarantees for one type
//   - Evaluate           - the run loop, failure reporting
//
// # Quick Start
//
//	fuzzer := falsify.NewFuzzer(
//	    falsify.Int64Range(-1000, 1000),
//	    falsify.Int64Simplifier,
//	)
//
//	err := falsify.Evaluate(fuzzer, falsify.DefaultConfig(), func(x int64) error {
//	    if abs(x) != abs(-x) {
//	        return fmt.Errorf("abs not symmetric at %d", x)
//	    }
//	    return nil
//	})
//
// A nil result means every input satisfied the property. A false
// property yields a *FalsifiedError carrying the minimized
// counterexample, the seed, and the original failure as its cause.
//
// Inside a test, the Check helpers do the error plumbing:
//
//	func TestAbsSymmetric(t *testing.T) {
//	    falsify.Check(t, fuzzer, func(x int64) error { ... })
//	}
//
// # Determinism
//
// Every run is rooted in a single int64 seed. The same seed, fuzzer and
// property replay the exact same inputs, draw for draw; DefaultConfig
// picks a fresh seed per run for variety, and every failure message
// carries the seed so the run can be pinned down:
//
//	cfg := falsify.DefaultConfig()
//	cfg.Seed = 42 // replay the failure from the log
//
// Determinism rests on two contracts: generators are pure functions of
// the draws they take from the Source, and evaluation is strictly
// sequential. There is no concurrency anywhere in a run.
//
// # Shrinking
//
// A falsifying input drawn at random is rarely minimal. A Simplifier
// turns a value into a finite ordered slice of simpler candidates, and
// the engine walks a greedy descent: take the first candidate that
// still falsifies the property, restart from it, stop when none does.
// The result is a local minimum under the candidate relation, reached
// in at most descent-depth times candidates-per-step property
// invocations, not in a search over the whole value space.
//
// For integers the built-in candidates move toward zero by successive
// halvings, so a property failing for all x >= 10 shrinks to exactly
// 10 no matter how large the first falsifying draw was.
//
// # Guarantees
//
// A generator can be subtly wrong: a "slices up to length 50" generator
// that never emits an empty slice silently weakens every property run
// against it. Guarantees make the expectation explicit:
//
//	fuzzer := falsify.NewFuzzer(gen, simplifier,
//	    falsify.Guarantee[[]int64]{
//	        Name:  "at least one empty slice",
//	        Holds: func(v []int64) bool { return len(v) == 0 },
//	    },
//	)
//
// A run keeps drawing beyond its configured iteration count until every
// guarantee has been satisfied, up to Iterations*GuaranteeLimit total
// draws. Past that budget the run fails with a GuaranteeError naming
// the guarantees that never held, rather than looping forever.
//
// # Logging
//
// The engine speaks log/slog. Handed a logger, it reports falsified
// properties and exhausted guarantees at Error and run completion at
// Debug; handed none, it is silent. See examples/sortcheck for wiring
// a tint handler to watch a run.
//
// # Non-goals
//
// falsify is not a coverage-guided fuzzer: no instrumentation feedback
// steers generation. It is not a model checker, and shrinking does not
// search for a global minimum - only the greedy local minimum reachable
// through the simplifier's candidates.
package falsify
