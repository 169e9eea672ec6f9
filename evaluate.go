package falsify

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config controls one evaluation run.
type Config struct {
	// Iterations is the number of inputs the property must satisfy.
	// Must be > 0.
	Iterations int

	// Seed roots the random sequence. Runs with the same seed and
	// fuzzer replay identical inputs. DefaultConfig fills in a fresh
	// seed; set it explicitly to reproduce a failure.
	Seed int64

	// GuaranteeLimit bounds how far unsatisfied guarantees may extend
	// the run: at most Iterations*GuaranteeLimit inputs are drawn in
	// total before the run gives up with a GuaranteeError. Zero means
	// the default of 10; negative is invalid.
	GuaranteeLimit int

	// Deadline bounds the wall-clock time of the whole run, shrinking
	// included. Zero means no deadline.
	Deadline time.Duration

	// Logger receives run diagnostics. Nil discards them.
	Logger *slog.Logger
}

const defaultGuaranteeLimit = 10

// DefaultConfig returns sensible defaults with a fresh seed.
func DefaultConfig() Config {
	return Config{
		Iterations:     100,
		Seed:           FreshSeed(),
		GuaranteeLimit: defaultGuaranteeLimit,
	}
}

func (c Config) validate() error {
	if c.Iterations <= 0 {
		return &InvalidConfigError{Field: "Iterations", Reason: fmt.Sprintf("must be > 0, got %d", c.Iterations)}
	}
	if c.GuaranteeLimit < 0 {
		return &InvalidConfigError{Field: "GuaranteeLimit", Reason: fmt.Sprintf("must be >= 0, got %d", c.GuaranteeLimit)}
	}
	if c.Deadline < 0 {
		return &InvalidConfigError{Field: "Deadline", Reason: fmt.Sprintf("must be >= 0, got %v", c.Deadline)}
	}
	return nil
}

// InvalidConfigError reports a precondition violation in Config. It is
// returned synchronously, before any input is generated.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("falsify: invalid config: %s %s", e.Field, e.Reason)
}

// FalsifiedError is the terminal artifact of a failing run: the
// property returned an error (or panicked) for some generated input,
// and Counterexample is the simplest falsifying value the shrink search
// reached from it.
type FalsifiedError[T any] struct {
	Iteration      int   // zero-based index of the falsifying draw
	Iterations     int   // requested iteration count
	Seed           int64 // reproduces the run exactly
	Counterexample T     // minimized falsifying input
	Shrinks        int   // committed simplification steps
	Cause          error // the property's failure on the counterexample's ancestor
}

func (e *FalsifiedError[T]) Error() string {
	return fmt.Sprintf("falsify: property falsified at iteration %d/%d (seed %d, %d shrinks): counterexample %v: %v",
		e.Iteration, e.Iterations, e.Seed, e.Shrinks, e.Counterexample, e.Cause)
}

func (e *FalsifiedError[T]) Unwrap() error {
	return e.Cause
}

// GuaranteeError reports that a run exhausted its draw budget with
// guarantees still unsatisfied. It usually means the generator cannot
// produce the guaranteed class at all, or produces it too rarely for
// the configured GuaranteeLimit.
type GuaranteeError struct {
	Unsatisfied []string // names of the pending guarantees
	Draws       int      // total inputs drawn before giving up
}

func (e *GuaranteeError) Error() string {
	return fmt.Sprintf("falsify: guarantees never satisfied after %d draws: %s",
		e.Draws, strings.Join(e.Unsatisfied, ", "))
}

// DeadlineError reports that a run exceeded Config.Deadline before
// completing its iterations.
type DeadlineError struct {
	Deadline time.Duration
	Draws    int
}

func (e *DeadlineError) Error() string {
	return fmt.Sprintf("falsify: run exceeded deadline %v after %d draws", e.Deadline, e.Draws)
}

// Report summarizes a completed run.
type Report struct {
	Seed       int64
	Iterations int // iterations the property satisfied
	Draws      int // total inputs drawn; exceeds Iterations when guarantees extended the run
	Shrinks    int // committed simplification steps, failing runs only
	Elapsed    time.Duration
}

// Evaluate runs property against cfg.Iterations inputs drawn from f's
// generator and returns nil when every input satisfied the property and
// every guarantee was met.
//
// A property fails by returning a non-nil error; panics inside the
// property are recovered and treated the same way, so assertion helpers
// that panic work unchanged. On the first failure no further inputs are
// drawn: the failing input is handed to the fuzzer's simplifier and the
// run returns a *FalsifiedError[T] carrying the minimized
// counterexample, the seed, and the original failure as its cause.
//
// Other failure modes: *InvalidConfigError for a bad Config,
// *GuaranteeError when the draw budget runs out with guarantees
// pending, *DeadlineError when cfg.Deadline elapses mid-run.
func Evaluate[T any](f *Fuzzer[T], cfg Config, property func(T) error) error {
	_, err := EvaluateReport(f, cfg, property)
	return err
}

// EvaluateReport is Evaluate returning run statistics alongside the
// outcome. The Report is valid for both passing and failing runs.
func EvaluateReport[T any](f *Fuzzer[T], cfg Config, property func(T) error) (Report, error) {
	if err := cfg.validate(); err != nil {
		return Report{}, err
	}
	if cfg.GuaranteeLimit == 0 {
		cfg.GuaranteeLimit = defaultGuaranteeLimit
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var deadline time.Time
	if cfg.Deadline > 0 {
		deadline = time.Now().Add(cfg.Deadline)
	}

	start := time.Now()
	seq := f.gen.Sequence(cfg.Seed)
	pending := append([]Guarantee[T](nil), f.guarantees...)
	budget := cfg.Iterations * cfg.GuaranteeLimit

	satisfied := 0
	for satisfied < cfg.Iterations || len(pending) > 0 {
		if seq.Drawn() >= budget {
			err := &GuaranteeError{Unsatisfied: guaranteeNames(pending), Draws: seq.Drawn()}
			logger.Error("guarantees never satisfied",
				"seed", cfg.Seed, "draws", seq.Drawn(), "pending", err.Unsatisfied)
			return report(cfg, satisfied, seq.Drawn(), 0, start), err
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			err := &DeadlineError{Deadline: cfg.Deadline, Draws: seq.Drawn()}
			logger.Error("run exceeded deadline",
				"seed", cfg.Seed, "draws", seq.Drawn(), "deadline", cfg.Deadline)
			return report(cfg, satisfied, seq.Drawn(), 0, start), err
		}
		if satisfied >= cfg.Iterations {
			logger.Debug("extending run for pending guarantees",
				"draws", seq.Drawn(), "pending", guaranteeNames(pending))
		}

		input := seq.Next()
		// Guarantees are a property of the input, not of the outcome:
		// update them before the property runs, failure or not.
		pending = dropSatisfied(pending, input)

		cause := invoke(property, input)
		if cause == nil {
			satisfied++
			continue
		}

		iteration := seq.Drawn() - 1
		minimal, shrinks := Minimize(f.simplify, input, func(candidate T) bool {
			if !deadline.IsZero() && time.Now().After(deadline) {
				// Out of time: stop accepting candidates and report
				// the best value reached so far.
				return false
			}
			return invoke(property, candidate) != nil
		})
		logger.Error("property falsified",
			"seed", cfg.Seed, "iteration", iteration, "shrinks", shrinks,
			"counterexample", minimal, "cause", cause)
		err := &FalsifiedError[T]{
			Iteration:      iteration,
			Iterations:     cfg.Iterations,
			Seed:           cfg.Seed,
			Counterexample: minimal,
			Shrinks:        shrinks,
			Cause:          cause,
		}
		return report(cfg, satisfied, seq.Drawn(), shrinks, start), err
	}

	logger.Debug("property held",
		"seed", cfg.Seed, "iterations", satisfied, "draws", seq.Drawn())
	return report(cfg, satisfied, seq.Drawn(), 0, start), nil
}

func report(cfg Config, satisfied, draws, shrinks int, start time.Time) Report {
	return Report{
		Seed:       cfg.Seed,
		Iterations: satisfied,
		Draws:      draws,
		Shrinks:    shrinks,
		Elapsed:    time.Since(start),
	}
}

// dropSatisfied returns the guarantees input does not satisfy. It
// builds a fresh slice each pass instead of removing in place, so no
// iteration ever observes a partially filtered list.
func dropSatisfied[T any](pending []Guarantee[T], input T) []Guarantee[T] {
	if len(pending) == 0 {
		return pending
	}
	kept := make([]Guarantee[T], 0, len(pending))
	for _, g := range pending {
		if !g.Holds(input) {
			kept = append(kept, g)
		}
	}
	return kept
}

// invoke runs the property, converting a panic into an error so the
// evaluation loop and the shrink search deal in outcomes, not control
// flow.
func invoke[T any](property func(T) error, input T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("property panicked: %v", r)
		}
	}()
	return property(input)
}

func guaranteeNames[T any](gs []Guarantee[T]) []string {
	names := make([]string, len(gs))
	for i, g := range gs {
		if g.Name == "" {
			names[i] = "(unnamed)"
			continue
		}
		names[i] = g.Name
	}
	return names
}
