package falsify

import (
	"errors"
	"testing"
)

func TestCheck_PassingProperty(t *testing.T) {
	fuzzer := NewFuzzer(Int64Range(-100, 100), Int64Simplifier)

	Check(t, fuzzer, func(x int64) error {
		if x < -100 || x > 100 {
			return errors.New("out of range")
		}
		return nil
	})
}

func TestCheckConfig_FailingPropertyFailsTest(t *testing.T) {
	fuzzer := NewFuzzer(Int64Range(-100, 100), Int64Simplifier)
	cfg := DefaultConfig()
	cfg.Iterations = 50

	// CheckConfig calls Fatalf on the fake T, which exits its
	// goroutine; run it on a separate one and inspect the result.
	fakeT := &testing.T{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		CheckConfig(fakeT, fuzzer, cfg, func(int64) error {
			return errors.New("never holds")
		})
	}()
	<-done

	if !fakeT.Failed() {
		t.Error("failing property did not fail the test")
	}
}

func TestCheckConfig_InvalidConfigFailsTest(t *testing.T) {
	fuzzer := NewFuzzer(Int64(), nil)
	cfg := DefaultConfig()
	cfg.Iterations = 0

	fakeT := &testing.T{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		CheckConfig(fakeT, fuzzer, cfg, func(int64) error { return nil })
	}()
	<-done

	if !fakeT.Failed() {
		t.Error("invalid config did not fail the test")
	}
}
