package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/paranoid/internal/core"
)

// countingGame counts Step calls so tests can tell how often the tick
// loop actually advanced the simulation.
type countingGame struct {
	steps int
	state core.GameState
}

func (g *countingGame) ID() string { return "counting" }

func (g *countingGame) Title() string { return "Counting" }

func (g *countingGame) Reset(cfg core.RuntimeConfig) { g.steps = 0 }

func (g *countingGame) Render(dst *core.Screen) {}

func (g *countingGame) State() core.GameState { return g.state }

func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.state}
}

func TestGameTickDropsEarlyDuplicates(t *testing.T) {
	g := &countingGame{}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
	m := NewGameModel(g, nil, nil, cfg)
	_ = m.Init()

	base := time.Now()
	model, cmd := m.Update(TickMsg(base))
	m = model.(GameModel)
	if cmd == nil {
		t.Fatal("Tick should schedule the next one")
	}
	if g.steps != 1 {
		t.Fatalf("Steps = %d, want 1", g.steps)
	}

	// A second tick well inside the interval is a leftover from another
	// loop: it must neither step the game nor reissue itself.
	model, cmd = m.Update(TickMsg(base.Add(time.Millisecond)))
	m = model.(GameModel)
	if cmd != nil {
		t.Error("Early duplicate tick must be dropped, not reissued")
	}
	if g.steps != 1 {
		t.Errorf("Early duplicate tick stepped the game: steps = %d, want 1", g.steps)
	}

	// The next on-time tick goes through.
	model, cmd = m.Update(TickMsg(base.Add(time.Second / 60)))
	_ = model.(GameModel)
	if cmd == nil {
		t.Error("On-time tick should schedule the next one")
	}
	if g.steps != 2 {
		t.Errorf("Steps = %d, want 2", g.steps)
	}
}

func TestSessionHandoffKeepsOneTickLoop(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m := NewSessionModel(nil, nil, cfg)
	_ = m.Init()

	// Select "Play" from the menu; the menu's own tick loop may still have
	// one message in flight after the handoff.
	model, _ := m.Update(keyMsg("enter"))
	sm := model.(SessionModel)
	if sm.state != stateGame {
		t.Fatalf("State = %v, want stateGame", sm.state)
	}

	base := time.Now()
	model, cmd := sm.Update(TickMsg(base))
	sm = model.(SessionModel)
	if cmd == nil {
		t.Fatal("Tick should schedule the next one")
	}

	// The stale menu tick arrives right behind it and must die here,
	// otherwise the game runs at double speed for the rest of the session.
	model, cmd = sm.Update(TickMsg(base.Add(time.Millisecond)))
	_ = model.(SessionModel)
	if cmd != nil {
		t.Error("Stale tick after the menu handoff must be dropped, not reissued")
	}
}
