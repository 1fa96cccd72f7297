package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // True score
	Lives    int  // Remaining lives
	Level    int  // Current level number (1-based)
	GameOver bool // Whether the game has ended
	Won      bool // Whether the campaign was completed
	Paused   bool // Whether the game is paused
}

// SoundEvent is a fire-and-forget audio cue emitted by the simulation.
// Pan is -1 (left) to 1 (right); the platform decides how to play it.
type SoundEvent struct {
	Name   string
	Volume float64
	Pan    float64
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Sounds []SoundEvent
}
