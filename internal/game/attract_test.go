package game

import "testing"

func TestAttractPlacement(t *testing.T) {
	a := NewAttract(42)

	if len(a.Balls) != RandomBalls {
		t.Fatalf("Balls = %d, want %d", len(a.Balls), RandomBalls)
	}

	for i, b := range a.Balls {
		if b.Box.Left() < a.Boundary.InnerLeft || b.Box.Right() > a.Boundary.InnerRight {
			t.Errorf("Ball %d outside horizontal bounds", i)
		}
		if b.Box.Bottom() < a.Boundary.InnerBottom || b.Box.Top() > a.Boundary.InnerTop {
			t.Errorf("Ball %d outside vertical bounds", i)
		}
		for j, other := range a.Balls[:i] {
			if b.Box.Overlaps(other.Box) {
				t.Errorf("Balls %d and %d overlap at spawn", i, j)
			}
		}
	}
}

func TestAttractBallsStayInBounds(t *testing.T) {
	a := NewAttract(7)

	for i := 0; i < 600; i++ {
		a.Update(1.0 / 60.0)
	}

	for i, b := range a.Balls {
		if b.Gone {
			t.Errorf("Ball %d fell out of a fullscreen boundary", i)
		}
		if b.Box.Right() > a.Boundary.InnerRight || b.Box.Left() < a.Boundary.InnerLeft ||
			b.Box.Top() > a.Boundary.InnerTop || b.Box.Bottom() < a.Boundary.InnerBottom {
			t.Errorf("Ball %d escaped the boundary", i)
		}
	}
}

func TestAttractDeterministicForSeed(t *testing.T) {
	a := NewAttract(99)
	b := NewAttract(99)

	for i := range a.Balls {
		if a.Balls[i].Box.CX != b.Balls[i].Box.CX || a.Balls[i].Box.CY != b.Balls[i].Box.CY {
			t.Fatalf("Ball %d placed differently for the same seed", i)
		}
	}
}
