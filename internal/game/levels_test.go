package game

import "testing"

func TestAllLevelGridsParse(t *testing.T) {
	if LevelCount() != 30 {
		t.Fatalf("LevelCount() = %d, want 30", LevelCount())
	}

	for n := 1; n <= LevelCount(); n++ {
		def, ok := GetLevel(n)
		if !ok {
			t.Fatalf("GetLevel(%d) not found", n)
		}
		if def.Number != n {
			t.Errorf("Level %d carries number %d", n, def.Number)
		}

		grid, err := ParseGrid(def.Grid)
		if err != nil {
			t.Fatalf("Level %d grid: %v", n, err)
		}
		for row, cols := range grid {
			if len(cols) != GridColumns {
				t.Errorf("Level %d row %d has %d columns, want %d",
					n, row, len(cols), GridColumns)
			}
		}
	}
}

func TestEveryLevelIsWinnable(t *testing.T) {
	// Each level needs at least one breakable brick, or it would complete
	// on the first tick.
	for n := 1; n <= LevelCount(); n++ {
		def, _ := GetLevel(n)
		grid, err := ParseGrid(def.Grid)
		if err != nil {
			t.Fatalf("Level %d grid: %v", n, err)
		}

		breakable := 0
		for _, cols := range grid {
			for _, kind := range cols {
				if kind != BrickNone && brickSpecs[kind].breakable {
					breakable++
				}
			}
		}
		if breakable == 0 {
			t.Errorf("Level %d has no breakable bricks", n)
		}

		// Icons need enough distinct bricks to attach to
		if len(def.Icons) > breakable {
			t.Errorf("Level %d has %d icons but only %d breakable bricks",
				n, len(def.Icons), breakable)
		}
	}
}

func TestGetLevelOutOfRange(t *testing.T) {
	if _, ok := GetLevel(0); ok {
		t.Error("GetLevel(0) should not exist")
	}
	if _, ok := GetLevel(LevelCount() + 1); ok {
		t.Error("GetLevel past the last level should not exist")
	}
}

func TestParseGridRejectsBadInput(t *testing.T) {
	if _, err := ParseGrid([]string{"RED_ BLUE"}); err == nil {
		t.Error("Short row should be rejected")
	}
	if _, err := ParseGrid([]string{
		"XXXX XXXX XXXX XXXX XXXX XXXX XXXX XXXX XXXX XXXX XXXX XXXX XXXX XXXX",
	}); err == nil {
		t.Error("Unknown brick tag should be rejected")
	}
}

func TestBrickPlacement(t *testing.T) {
	bd := NewPlayingFieldBoundary()

	// Row 0, column 0 sits flush under the top edge at the left margin
	b := NewBrick(BrickRed, 0, 0, bd)
	if b.Box.Left() != bd.InnerLeft+BrickMargin {
		t.Errorf("Left = %f, want %f", b.Box.Left(), bd.InnerLeft+BrickMargin)
	}
	wantCY := bd.InnerTop - BrickMargin - BrickHeight/2
	if b.Box.CY != wantCY {
		t.Errorf("CY = %f, want %f", b.Box.CY, wantCY)
	}

	// The full 14-column row fits inside the field
	last := NewBrick(BrickRed, 0, GridColumns-1, bd)
	if last.Box.Right() > bd.InnerRight {
		t.Errorf("Last column overflows the field: right = %f, boundary = %f",
			last.Box.Right(), bd.InnerRight)
	}
}
