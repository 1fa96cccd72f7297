package game

import (
	"testing"

	"github.com/vovakirdan/paranoid/internal/core"
	"github.com/vovakirdan/paranoid/internal/registry"
)

func TestGameRegistration(t *testing.T) {
	if !registry.Exists("paranoid") {
		t.Error("paranoid not registered")
	}
	if !registry.Exists("paranoid_demo") {
		t.Error("paranoid_demo not registered")
	}

	g, err := registry.Create("paranoid")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "paranoid" || g.Title() != "Paranoid" {
		t.Errorf("ID/Title = %s/%s", g.ID(), g.Title())
	}
}

func TestGameReset(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(1))

	st := g.State()
	if st.Lives != StartingLives {
		t.Errorf("Lives = %d, want %d", st.Lives, StartingLives)
	}
	if st.Level != 1 {
		t.Errorf("Level = %d, want 1", st.Level)
	}
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("Fresh game state: %+v", st)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Error("Pause action should pause")
	}

	// Paused games do not advance
	before := g.level.Elapsed
	g.Step(core.NewInputFrame())
	if g.level.Elapsed != before {
		t.Error("Level advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("Second pause action should unpause")
	}
}

func TestGamePauseReleasesHeldKeys(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(1))

	held := core.NewInputFrame()
	held.Set(core.ActionLeft)
	g.Step(held)
	if !g.level.LeftPressed {
		t.Fatal("Held key not registered")
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if g.level.LeftPressed {
		t.Error("Held movement key stuck across a pause")
	}
}

func TestDemoRunsWithoutInput(t *testing.T) {
	g := NewGame(ModeDemo)
	g.Reset(testConfig(42))

	if !g.level.GameIsActive {
		t.Fatal("Demo level should start active")
	}

	empty := core.NewInputFrame()
	ticks := int((DemoLevelTime + 1) * 60)
	for i := 0; i < ticks && !g.State().GameOver; i++ {
		g.Step(empty)
	}

	if !g.State().GameOver {
		t.Error("Demo should finish on its own")
	}
}

func TestDemoIgnoresFire(t *testing.T) {
	g := NewGame(ModeDemo)
	g.Reset(testConfig(42))

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	if len(g.level.Bullets) != 0 {
		t.Error("Demo must not react to fire input")
	}
}

func TestCampaignAdvancesToNextLevel(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(1))

	g.level.AdvanceRequested = true
	g.Step(core.NewInputFrame())

	if g.State().Level != 2 {
		t.Errorf("Level = %d, want 2", g.State().Level)
	}
	if g.State().GameOver {
		t.Error("Advancing must not end the game")
	}
}

func TestCampaignWonPastLastLevel(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(1))

	g.session.LevelNumber = LevelCount()
	g.level.AdvanceRequested = true
	g.Step(core.NewInputFrame())

	st := g.State()
	if !st.GameOver || !st.Won {
		t.Errorf("Past the last level: GameOver = %v, Won = %v", st.GameOver, st.Won)
	}
}

func TestStartLevelSetting(t *testing.T) {
	SetStartLevel(5)
	defer SetStartLevel(1)

	g := NewGame(ModeCampaign)
	g.Reset(testConfig(1))

	if g.State().Level != 5 {
		t.Errorf("Level = %d, want 5", g.State().Level)
	}

	// The demo always runs its own level
	d := NewGame(ModeDemo)
	d.Reset(testConfig(1))
	if d.State().Level != 1 {
		t.Errorf("Demo level = %d, want 1", d.State().Level)
	}
}

func TestStartLevelRejectsOutOfRange(t *testing.T) {
	SetStartLevel(1)
	SetStartLevel(0)
	SetStartLevel(LevelCount() + 1)

	g := NewGame(ModeCampaign)
	g.Reset(testConfig(1))
	if g.State().Level != 1 {
		t.Errorf("Level = %d, want 1", g.State().Level)
	}
}

func TestRenderProducesFrame(t *testing.T) {
	g := NewGame(ModeCampaign)
	g.Reset(testConfig(1))

	screen := core.NewScreen(100, 30)
	g.Render(screen)

	// The paddle row must contain paddle glyphs somewhere
	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == '▀' {
				found = true
			}
		}
	}
	if !found {
		t.Error("Rendered frame contains no paddle")
	}
}
