package falsify

import (
	"errors"
	"testing"
)

// Check evaluates property against f with DefaultConfig and fails the
// test on any outcome other than success. The failure message includes
// the seed, so a failing run can be replayed exactly with CheckConfig.
func Check[T any](t *testing.T, f *Fuzzer[T], property func(T) error) {
	t.Helper()
	CheckConfig(t, f, DefaultConfig(), property)
}

// CheckConfig is Check with an explicit Config.
func CheckConfig[T any](t *testing.T, f *Fuzzer[T], cfg Config, property func(T) error) {
	t.Helper()

	rep, err := EvaluateReport(f, cfg, property)
	if err == nil {
		t.Logf("property held: %d iterations, %d draws (seed %d, %v)",
			rep.Iterations, rep.Draws, rep.Seed, rep.Elapsed)
		return
	}

	var falsified *FalsifiedError[T]
	if errors.As(err, &falsified) {
		t.Fatalf("property falsified (reproduce with seed %d):\n"+
			"  counterexample: %v\n"+
			"  found at iteration %d of %d, simplified in %d steps\n"+
			"  cause: %v",
			falsified.Seed, falsified.Counterexample,
			falsified.Iteration, falsified.Iterations, falsified.Shrinks,
			falsified.Cause)
	}

	t.Fatalf("evaluation failed (seed %d): %v", cfg.Seed, err)
}
