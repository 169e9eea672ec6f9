package falsify

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInt64Simplifier_Candidates(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		want []int64
	}{
		{"zero has no candidates", 0, nil},
		{"one", 1, []int64{0}},
		{"ten", 10, []int64{0, 5, -5, 8, -8, 9, -9}},
		{"negative ten", -10, []int64{0, -5, 5, -8, 8, -9, 9}},
		{"leet", 1337, []int64{
			0, 669, -669, 1003, -1003, 1170, -1170, 1254, -1254,
			1296, -1296, 1317, -1317, 1327, -1327, 1332, -1332,
			1335, -1335, 1336, -1336,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Int64Simplifier(tt.v)); diff != "" {
				t.Errorf("candidates of %d (-want +got):\n%s", tt.v, diff)
			}
		})
	}
}

func TestInt64Simplifier_WellFounded(t *testing.T) {
	for _, v := range []int64{1, 2, 10, 999, -1, -10, -999, 1 << 40} {
		for _, c := range Int64Simplifier(v) {
			if magnitude(c) >= magnitude(v) {
				t.Errorf("candidate %d of %d does not reduce magnitude", c, v)
			}
		}
	}
}

func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func TestMinimize_FindsBoundary(t *testing.T) {
	// Fails for all |x| >= 10, so the boundary value itself is the
	// minimal counterexample regardless of the starting point.
	falsifying := func(x int64) bool { return magnitude(x) >= 10 }

	tests := []struct {
		x0   int64
		want int64
	}{
		{10, 10},
		{11, 10},
		{500, 10},
		{997, 10},
		{-500, -10},
		{1 << 40, 10},
	}

	for _, tt := range tests {
		got, shrinks := Minimize(Int64Simplifier, tt.x0, falsifying)
		if got != tt.want {
			t.Errorf("Minimize from %d = %d, want %d", tt.x0, got, tt.want)
		}
		if tt.x0 != tt.want && shrinks == 0 {
			t.Errorf("Minimize from %d reported no shrinks", tt.x0)
		}
	}
}

func TestMinimize_NilSimplifier(t *testing.T) {
	got, shrinks := Minimize[int64](nil, 12345, func(int64) bool { return true })
	if got != 12345 || shrinks != 0 {
		t.Errorf("got (%d, %d), want (12345, 0)", got, shrinks)
	}
}

func TestMinimize_EmptyCandidates(t *testing.T) {
	none := func(int64) []int64 { return nil }

	got, shrinks := Minimize(none, 777, func(int64) bool { return true })
	if got != 777 || shrinks != 0 {
		t.Errorf("got (%d, %d), want (777, 0)", got, shrinks)
	}
}

func TestMinimize_NoCandidateFalsifies(t *testing.T) {
	// Only the original value falsifies: the descent must stay put.
	got, shrinks := Minimize(Int64Simplifier, 42, func(x int64) bool { return x == 42 })
	if got != 42 || shrinks != 0 {
		t.Errorf("got (%d, %d), want (42, 0)", got, shrinks)
	}
}

func TestMinimize_CommitsToFirstCandidate(t *testing.T) {
	// Candidate order is the search policy: when several candidates
	// falsify, the engine must take the earliest one.
	simplify := func(v int64) []int64 {
		if v == 100 {
			return []int64{30, 20, 10}
		}
		return nil
	}

	got, shrinks := Minimize(simplify, 100, func(x int64) bool { return x >= 20 })
	if got != 30 || shrinks != 1 {
		t.Errorf("got (%d, %d), want (30, 1)", got, shrinks)
	}
}

func TestSliceSimplifier_DropsBeforeSimplifying(t *testing.T) {
	simplify := SliceSimplifier[int64](Int64Simplifier)

	got := simplify([]int64{1, 2})
	want := [][]int64{
		{},       // empty first
		{2}, {1}, // halves
		{2}, {1}, // single removals
		{0, 2},                  // elementwise: 1 -> 0
		{1, 0}, {1, 1}, {1, -1}, // elementwise: 2 -> 0, 1, -1
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("candidates of [1 2] (-want +got):\n%s", diff)
	}
}

func TestSliceSimplifier_EmptySlice(t *testing.T) {
	simplify := SliceSimplifier[int64](Int64Simplifier)
	if got := simplify(nil); got != nil {
		t.Errorf("empty slice produced candidates: %v", got)
	}
}

func TestMinimize_SliceDescent(t *testing.T) {
	// Fails whenever the slice has at least two elements; the minimal
	// counterexample under the built-in candidates is two zeros.
	simplify := SliceSimplifier[int64](Int64Simplifier)
	falsifying := func(v []int64) bool { return len(v) >= 2 }

	got, _ := Minimize(simplify, []int64{5, 6, 7}, falsifying)
	if diff := cmp.Diff([]int64{0, 0}, got); diff != "" {
		t.Errorf("minimal slice (-want +got):\n%s", diff)
	}
}
