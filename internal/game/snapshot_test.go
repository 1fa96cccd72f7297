package game

import (
	"testing"

	"github.com/vovakirdan/paranoid/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  100,
		ScreenH:  30,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestDeterministicSimulation(t *testing.T) {
	a := NewGame(ModeCampaign)
	b := NewGame(ModeCampaign)
	a.Reset(testConfig(42))
	b.Reset(testConfig(42))

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	a.Step(in)
	b.Step(in)

	held := core.NewInputFrame()
	held.Set(core.ActionLeft)
	for i := 0; i < 600; i++ {
		a.Step(held)
		b.Step(held)
	}

	snapA := a.Snapshot()
	snapB := b.Snapshot()
	if snapA.Hash() != snapB.Hash() {
		t.Error("Same seed and input produced diverging states")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(7))

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 300; i++ {
		g.Step(right)
	}

	snap := g.Snapshot()

	restored := NewGame(ModeCampaign)
	restored.Reset(testConfig(999)) // Overwritten entirely by the snapshot
	restored.ApplySnapshot(snap)

	again := restored.Snapshot()
	if snap.Hash() != again.Hash() {
		t.Error("Snapshot changed through an apply/capture round trip")
	}
}

func TestSnapshotRestoredGameKeepsStepping(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(7))

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	empty := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(empty)
	}

	snap := g.Snapshot()

	restored := NewGame(ModeCampaign)
	restored.Reset(testConfig(7))
	restored.ApplySnapshot(snap)

	// Both continue from the same point and must stay in lockstep
	for i := 0; i < 300; i++ {
		g.Step(empty)
		restored.Step(empty)
	}

	a := g.Snapshot()
	b := restored.Snapshot()
	if a.Hash() != b.Hash() {
		t.Error("Restored game diverged from the original")
	}
}

func TestSnapshotCapturesSessionState(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(3))

	g.session.Score = 4200
	g.session.DisplayScore = 4000
	g.level.BonusOrder = "BO"

	snap := g.Snapshot()
	if snap.Score != 4200 || snap.DisplayScore != 4000 {
		t.Errorf("Score/DisplayScore = %d/%d, want 4200/4000", snap.Score, snap.DisplayScore)
	}
	if snap.BonusOrder != "BO" {
		t.Errorf("BonusOrder = %q, want \"BO\"", snap.BonusOrder)
	}
	if len(snap.Balls) != 1 {
		t.Errorf("Balls = %d, want 1", len(snap.Balls))
	}
	if len(snap.Bricks) == 0 {
		t.Error("Snapshot captured no bricks")
	}
}

func TestSnapshotRestoresMagneticBalls(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(3))

	lv := g.level
	lv.Paddle.Magnetic = true
	b := lv.Balls[0]
	b.Box.CX = lv.Paddle.Box.CX
	b.Box.CY = lv.Paddle.Box.Top()
	b.ChangeProperties()
	lv.compact()

	snap := g.Snapshot()

	restored := NewGame(ModeCampaign)
	restored.Reset(testConfig(3))
	restored.ApplySnapshot(snap)

	p := restored.level.Paddle
	if !p.Magnetic {
		t.Error("Paddle magnetism not restored")
	}
	if len(p.MagneticBalls) != 1 {
		t.Errorf("MagneticBalls = %d, want 1", len(p.MagneticBalls))
	}
}

func TestHashDistinguishesStates(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(3))
	a := g.Snapshot()

	g.session.Score += 100
	b := g.Snapshot()

	if a.Hash() == b.Hash() {
		t.Error("Different scores hashed identically")
	}
}
