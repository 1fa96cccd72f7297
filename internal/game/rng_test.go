package game

import "testing"

func TestRNGDeterminism(t *testing.T) {
	a := NewSimpleRNG(12345)
	b := NewSimpleRNG(12345)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("RNGs with same seed diverged at step %d", i)
		}
	}
}

func TestRNGIntnBounds(t *testing.T) {
	rng := NewSimpleRNG(42)

	for i := 0; i < 1000; i++ {
		v := rng.Intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Intn(10) = %d, out of range", v)
		}
	}

	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
	if rng.Intn(-5) != 0 {
		t.Error("Intn(-5) should return 0")
	}
}

func TestRNGRange(t *testing.T) {
	rng := NewSimpleRNG(7)

	for i := 0; i < 1000; i++ {
		v := rng.Range(45, 60)
		if v < 45 || v >= 60 {
			t.Fatalf("Range(45, 60) = %d, out of range", v)
		}
	}

	if rng.Range(10, 10) != 10 {
		t.Error("Range with empty interval should return lo")
	}
}

func TestRNGSample(t *testing.T) {
	rng := NewSimpleRNG(99)

	picks := rng.Sample(20, 5)
	if len(picks) != 5 {
		t.Fatalf("Sample(20, 5) returned %d indices", len(picks))
	}

	seen := make(map[int]bool)
	for _, p := range picks {
		if p < 0 || p >= 20 {
			t.Errorf("Sample index %d out of range", p)
		}
		if seen[p] {
			t.Errorf("Sample index %d repeated", p)
		}
		seen[p] = true
	}

	// Requesting more than available caps at n
	all := rng.Sample(3, 10)
	if len(all) != 3 {
		t.Errorf("Sample(3, 10) returned %d indices, want 3", len(all))
	}
}

func TestRNGStateRoundTrip(t *testing.T) {
	rng := NewSimpleRNG(5)
	rng.Next()
	rng.Next()

	saved := rng.State()
	want := rng.Next()

	rng.SetState(saved)
	if got := rng.Next(); got != want {
		t.Errorf("After SetState, Next() = %d, want %d", got, want)
	}
}
