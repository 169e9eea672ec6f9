package falsify

import (
	"sync/atomic"
	"time"
)

// Source is a deterministic pseudo-random bit source with 64 bits of
// internal state. The same seed always produces the same draw sequence,
// and every draw advances the state exactly once, so the value at
// position i depends only on the seed and the i draws before it.
//
// A Source is owned by a single run and is not safe for concurrent use.
type Source struct {
	state uint64
}

// NewSource creates a Source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{state: uint64(seed)}
}

// Uint64 advances the state and returns the next pseudo-random uint64.
//
// The state walks an additive Weyl sequence; the output is the
// splitmix64 finalizer applied to the new state. The full 2^64 state
// space is cycled before any repetition.
func (s *Source) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Int63 returns a non-negative pseudo-random 63-bit integer.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Int63n returns a uniform pseudo-random integer in [0, n).
// Panics if n <= 0.
func (s *Source) Int63n(n int64) int64 {
	if n <= 0 {
		panic("falsify: Int63n called with n <= 0")
	}
	return int64(s.uint64n(uint64(n)))
}

// IntN returns a uniform pseudo-random int in [0, n).
// Panics if n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		panic("falsify: IntN called with n <= 0")
	}
	return int(s.uint64n(uint64(n)))
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Bool returns a pseudo-random boolean.
func (s *Source) Bool() bool {
	return s.Uint64()&1 == 1
}

// uint64n returns a uniform value in [0, n) using rejection sampling to
// avoid modulo bias. n == 0 means the full 64-bit range.
func (s *Source) uint64n(n uint64) uint64 {
	if n == 0 {
		return s.Uint64()
	}
	if n&(n-1) == 0 {
		return s.Uint64() & (n - 1)
	}
	// threshold == 2^64 mod n; rejecting draws below it leaves an
	// exact multiple of n equally likely values.
	threshold := -n % n
	for {
		v := s.Uint64()
		if v >= threshold {
			return v % n
		}
	}
}

var seedCounter atomic.Int64

// FreshSeed returns a process-unique seed for run-to-run variety.
// The time component keeps separate processes apart, the counter keeps
// calls within one nanosecond tick apart. Supply an explicit seed to
// Config instead when a run must be reproduced exactly.
func FreshSeed() int64 {
	return time.Now().UnixNano() + seedCounter.Add(1)*0x9e3779b9
}
