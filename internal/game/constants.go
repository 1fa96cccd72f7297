// Package game implements the Paranoid brick-breaker simulation: boundary,
// paddle, bricks, balls, falling icons, bullets, and the level state
// machine. The package is pure: no rendering, no input polling, no audio
// playback. Sounds are emitted as events and drained by the platform.
package game

// Simulation space is measured in pixels with the Y axis pointing up,
// matching the fixed 1536x864 field the levels were designed for. The
// renderer scales positions down to terminal cells.
const (
	ScreenWidth  = 1536
	ScreenHeight = 864

	ScreenPadding     = 10
	BoundaryThickness = 25
	PlayingFieldWidth = 1080

	GridColumns = 14
	BrickWidth  = 75.0
	BrickHeight = 25.0
	BrickMargin = 2.0
)

// Entity dimensions. The original sprites carried these in their textures.
const (
	BallSize = 24.0

	PaddleHeight      = 20.0
	PaddleWidthShort  = 140.0
	PaddleWidthNormal = 200.0
	PaddleWidthLong   = 260.0

	IconSize = 50.0

	BulletWidth  = 8.0
	BulletHeight = 20.0

	BarrierHeight = 2.0
)

// Speeds are in pixels per second. Ball speed is clamped to
// [BallMinSpeed, BallMaxSpeed] after every mutation.
const (
	BallMinSpeed = 550.0
	BallMaxSpeed = 850.0

	PaddleSpeed = 500.0
	IconSpeed   = 100.0
	BulletSpeed = 300.0

	SpeedIncrement = 50.0
	SpeedDecrement = 50.0
)

// Timers in seconds. Pauses are elapsed-time gates, never sleeps, so
// drawing and input handling continue during them.
const (
	PauseTime      = 3.0
	TransitionTime = 1.0
	DemoLevelTime  = 12.0
)

const (
	StartingLives    = 3
	RandomBalls      = 10
	DisplayScoreStep = 5
)

// Sound event volumes and names. Pan is -1 left to 1 right.
const (
	NormalVolume = 0.3
	LowVolume    = 0.1
)

const (
	SoundHitSide       = "hit_side_boundary"
	SoundHitTop        = "hit_top_boundary"
	SoundHitBottom     = "hit_bottom_boundary"
	SoundHitBrick      = "hit_brick"
	SoundHitSolid      = "hit_unbreakable_brick"
	SoundHitBonus      = "hit_bonus_brick"
	SoundHitBarrier    = "hit_safety_barrier"
	SoundHitPaddle     = "hit_paddle"
	SoundCollectIcon   = "collect_icon"
	SoundShoot         = "shoot_bullet"
	SoundLoseLife      = "lose_life"
	SoundGameOver      = "game_over"
	SoundLevelComplete = "level_complete"
	SoundAddingBonus   = "adding_bonus"
)
