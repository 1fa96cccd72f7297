package game

import (
	"time"

	"github.com/vovakirdan/paranoid/internal/config"
	"github.com/vovakirdan/paranoid/internal/core"
	"github.com/vovakirdan/paranoid/internal/registry"
)

// Mode selects between the campaign and the timed attract demo.
type Mode int

const (
	ModeCampaign Mode = iota
	ModeDemo
)

// Package-level settings applied by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
	startLevel       = 1
)

// SetConfigPath sets a custom config file path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequent games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the 1-based level the campaign starts at.
func SetStartLevel(n int) {
	if n >= 1 && n <= LevelCount() {
		startLevel = n
	}
}

// Game drives the level state machine and adapts it to the platform's
// Game interface. It owns the session (score, lives) that outlives
// individual levels.
type Game struct {
	mode Mode

	cfg     core.RuntimeConfig
	gameCfg *config.ParanoidConfig

	session *Session
	level   *Level
	rng     *SimpleRNG

	paused   bool
	gameOver bool
	won      bool

	screenTooSmall bool
}

// NewGame creates a game in the given mode.
func NewGame(mode Mode) *Game {
	return &Game{mode: mode}
}

func init() {
	registry.Register("paranoid", func() registry.Game {
		return NewGame(ModeCampaign)
	})
	registry.Register("paranoid_demo", func() registry.Game {
		return NewGame(ModeDemo)
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeDemo {
		return "paranoid_demo"
	}
	return "paranoid"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDemo {
		return "Paranoid (Demo)"
	}
	return "Paranoid"
}

// Reset initializes the session and the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g.cfg = cfg

	gameCfg, err := config.LoadParanoid(configPath)
	if err != nil {
		// A broken custom config falls back to defaults; the CLI already
		// warned about it before starting the session.
		gameCfg = config.DefaultParanoidConfig()
	}
	config.ApplyParanoidPreset(gameCfg, difficultyPreset)
	g.gameCfg = gameCfg

	g.rng = NewSimpleRNG(cfg.Seed)
	g.session = NewSession(g.gameCfg.Gameplay.Lives)
	g.paused = false
	g.gameOver = false
	g.won = false

	first := startLevel
	if first == 1 && g.gameCfg.Gameplay.StartLevel > 1 {
		first = g.gameCfg.Gameplay.StartLevel
	}
	if g.mode == ModeDemo {
		first = 1
	}
	def, ok := GetLevel(first)
	if !ok {
		def, _ = GetLevel(1)
	}
	g.level = NewLevel(def, g.session, g.rng, g.mode == ModeDemo)

	g.screenTooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.level == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused

		// Held movement keys must not stick across a pause
		g.level.ReleaseLeft()
		g.level.ReleaseRight()
	}

	if g.paused || g.gameOver || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// The platform reports held keys each frame; translate them into the
	// level's press/release event pairs.
	if in.Has(core.ActionLeft) {
		g.level.PressLeft()
	} else {
		g.level.ReleaseLeft()
	}
	if in.Has(core.ActionRight) {
		g.level.PressRight()
	} else {
		g.level.ReleaseRight()
	}
	if in.Has(core.ActionFire) && g.mode != ModeDemo {
		g.level.Fire()
	}

	g.session.UpdateDisplayScore()

	dt := 1.0 / float64(g.cfg.TickRate)
	g.level.Update(dt)

	switch {
	case g.level.DemoFinished:
		g.gameOver = true

	case g.level.HandOffRequested:
		g.gameOver = true

	case g.level.AdvanceRequested:
		next, ok := GetLevel(g.session.LevelNumber + 1)
		if !ok {
			// Past the last level: the campaign is complete, which is a
			// normal outcome routed to the high-score flow.
			g.won = true
			g.gameOver = true
			break
		}
		// The previous level's entire object graph is discarded
		g.level = NewLevel(next, g.session, g.rng, false)
	}

	return core.StepResult{
		State:  g.State(),
		Sounds: g.level.DrainSounds(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
	if g.session != nil {
		st.Score = g.session.Score
		st.Lives = g.session.Lives
		st.Level = g.session.LevelNumber
	}
	return st
}

// Session exposes the running session for the platform (name entry needs
// the final score and level).
func (g *Game) Session() *Session {
	return g.session
}

// Level exposes the current level, for tests and the renderer.
func (g *Game) Level() *Level {
	return g.level
}
