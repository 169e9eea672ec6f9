package falsify

import "testing"

func TestSource_Determinism(t *testing.T) {
	a := NewSource(1234)
	b := NewSource(1234)

	for i := 0; i < 1000; i++ {
		if va, vb := a.Uint64(), b.Uint64(); va != vb {
			t.Fatalf("draw %d diverged: %d vs %d", i, va, vb)
		}
	}
}

func TestSource_SeedsDiffer(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical streams")
	}
}

func TestSource_Advances(t *testing.T) {
	s := NewSource(42)

	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		seen[s.Uint64()] = true
	}
	if len(seen) < 100 {
		t.Errorf("expected 100 distinct draws, got %d", len(seen))
	}
}

func TestSource_Int63nBounds(t *testing.T) {
	s := NewSource(7)

	for _, n := range []int64{1, 2, 3, 7, 100, 1 << 40} {
		for i := 0; i < 200; i++ {
			v := s.Int63n(n)
			if v < 0 || v >= n {
				t.Fatalf("Int63n(%d) = %d, out of [0, %d)", n, v, n)
			}
		}
	}
}

func TestSource_Int63nPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Int63n(0) did not panic")
		}
	}()
	NewSource(1).Int63n(0)
}

func TestSource_Float64Range(t *testing.T) {
	s := NewSource(99)

	for i := 0; i < 1000; i++ {
		v := s.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, out of [0, 1)", v)
		}
	}
}

func TestSource_BoolVaries(t *testing.T) {
	s := NewSource(5)

	trues := 0
	for i := 0; i < 1000; i++ {
		if s.Bool() {
			trues++
		}
	}
	if trues == 0 || trues == 1000 {
		t.Errorf("Bool() never varied: %d/1000 true", trues)
	}
}

func TestFreshSeed_Unique(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		seed := FreshSeed()
		if seen[seed] {
			t.Fatalf("FreshSeed repeated %d after %d calls", seed, i)
		}
		seen[seed] = true
	}
}
