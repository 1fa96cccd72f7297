package game

import "github.com/vovakirdan/paranoid/internal/core"

// Session holds the state that outlives individual levels: score, lives,
// and the animated score display. Levels mutate it through explicit calls.
type Session struct {
	Score        int
	Lives        int
	LevelNumber  int
	DisplayScore int
}

// NewSession creates a session with the given starting lives.
func NewSession(lives int) *Session {
	return &Session{Lives: lives}
}

// UpdateDisplayScore advances the animated score counter one step toward
// the true score. The catch-up gates level transitions, so it runs every
// frame regardless of phase.
func (s *Session) UpdateDisplayScore() {
	if s.DisplayScore < s.Score {
		s.DisplayScore += DisplayScoreStep
		if s.DisplayScore > s.Score {
			s.DisplayScore = s.Score
		}
	}
}

// Level orchestrates one level: it owns the paddle, balls, bricks, icons,
// and bullets, and runs the phase state machine
// Inactive -> Active -> {LifeLost, LevelComplete, GameOver} -> transition.
// All pauses are elapsed-time gates checked each tick.
type Level struct {
	Number int
	Demo   bool

	session *Session
	rng     *SimpleRNG

	Boundary Boundary
	Paddle   *Paddle
	Balls    []*Ball
	Bricks   []*Brick
	Icons    []*Icon
	Bullets  []*Bullet

	// Phase flags, original-style: at most one of the terminal flags is
	// set at a time.
	GameIsActive  bool
	LostALife     bool
	LevelComplete bool
	GameOver      bool

	BonusAdded    bool
	LoadNextLevel bool

	// Set once the corresponding timed transition has run its course;
	// consumed by the owning Game.
	AdvanceRequested bool
	HandOffRequested bool
	DemoFinished     bool

	LeftPressed  bool
	RightPressed bool

	BonusOrder string // Bonus letters in collection order
	BonusScore int

	Elapsed     float64
	elapsedCopy float64

	sounds []core.SoundEvent
}

// NewLevel builds a level from its grid definition. Icons are distributed
// over the breakable bricks by a uniform random sample without
// replacement, one icon per distinct brick.
func NewLevel(def LevelDef, session *Session, rng *SimpleRNG, demo bool) *Level {
	lv := &Level{
		Number:   def.Number,
		Demo:     demo,
		session:  session,
		rng:      rng,
		Boundary: NewPlayingFieldBoundary(),
	}
	session.LevelNumber = def.Number

	lv.Paddle = NewPaddle(lv, PaddleNormal)
	lv.Paddle.Demo = demo
	lv.Balls = append(lv.Balls, NewBall(lv.Boundary, lv, false, false))

	grid, err := ParseGrid(def.Grid)
	if err != nil {
		// Grids are compiled-in data; a malformed one is a programming
		// error, not a runtime condition.
		panic(err)
	}

	var breakable []*Brick
	for row, cols := range grid {
		for col, kind := range cols {
			if kind == BrickNone {
				continue
			}
			brick := NewBrick(kind, row, col, lv.Boundary)
			if brick.Breakable {
				breakable = append(breakable, brick)
			}
			lv.Bricks = append(lv.Bricks, brick)
		}
	}

	for i, pick := range rng.Sample(len(breakable), len(def.Icons)) {
		breakable[pick].Icon = def.Icons[i]
	}

	if demo {
		lv.GameIsActive = true
	}

	return lv
}

// emit queues a fire-and-forget sound event for the platform layer.
func (lv *Level) emit(name string, volume, pan float64) {
	lv.sounds = append(lv.sounds, core.SoundEvent{Name: name, Volume: volume, Pan: pan})
}

// DrainSounds returns the sound events queued since the last drain.
func (lv *Level) DrainSounds() []core.SoundEvent {
	out := lv.sounds
	lv.sounds = nil
	return out
}

// PressLeft starts moving the paddle left.
func (lv *Level) PressLeft() { lv.LeftPressed = true }

// ReleaseLeft stops moving the paddle left.
func (lv *Level) ReleaseLeft() { lv.LeftPressed = false }

// PressRight starts moving the paddle right.
func (lv *Level) PressRight() { lv.RightPressed = true }

// ReleaseRight stops moving the paddle right.
func (lv *Level) ReleaseRight() { lv.RightPressed = false }

// Fire handles the space action: start the round, release magnetic balls,
// and shoot if the shooter is armed.
func (lv *Level) Fire() {
	if lv.LostALife || lv.GameOver || lv.LevelComplete {
		return
	}

	lv.GameIsActive = true

	if lv.Paddle.Magnetic {
		lv.Paddle.ReleaseMagneticBalls(lv)
	}
	if lv.Paddle.ShooterArmed {
		lv.Bullets = append(lv.Bullets, NewBullet(lv))
		lv.emit(SoundShoot, NormalVolume, 0)
	}
}

// Update advances the level by one tick.
func (lv *Level) Update(dt float64) {
	lv.Elapsed += dt

	if lv.Demo && lv.Elapsed > DemoLevelTime {
		lv.DemoFinished = true
	}

	switch {
	case lv.GameIsActive:
		lv.updateActive(dt)

	// Pause, then respawn the paddle and ball for the next life. Gating
	// on elapsed time instead of sleeping keeps drawing uninterrupted.
	case lv.LostALife && lv.Elapsed > PauseTime+TransitionTime:
		lv.Paddle = NewPaddle(lv, PaddleNormal)
		lv.Balls = append(lv.Balls, NewBall(lv.Boundary, lv, false, false))
		lv.LostALife = false

	// Game over exits only after the displayed score caught up.
	case lv.GameOver && lv.Elapsed > PauseTime*2+TransitionTime &&
		lv.session.DisplayScore == lv.session.Score:
		lv.HandOffRequested = true

	// Level complete: wait out the pause and the score animation, then
	// arm the final delay before handing off to the next level.
	case lv.LevelComplete && lv.Elapsed > PauseTime+TransitionTime &&
		lv.session.DisplayScore == lv.session.Score && !lv.LoadNextLevel:
		lv.LoadNextLevel = true
		lv.elapsedCopy = lv.Elapsed

	case lv.LoadNextLevel && lv.Elapsed > lv.elapsedCopy+PauseTime-1:
		lv.AdvanceRequested = true
	}

	// The bonus is credited once, a fixed pause into the level-complete
	// phase, before the display score can finish catching up.
	if lv.LevelComplete && lv.Elapsed > PauseTime && !lv.BonusAdded {
		lv.session.Score += lv.BonusScore
		lv.BonusAdded = true
		lv.emit(SoundAddingBonus, NormalVolume, 0)
	}
}

// updateActive runs one tick of live gameplay. Balls update before the
// paddle (magnetic balls depend on it), then icons, bullets, and the
// brick hit latches.
func (lv *Level) updateActive(dt float64) {
	balls := lv.Balls
	for _, ball := range balls {
		if !ball.Gone {
			ball.Update(dt)
		}
	}

	lv.Paddle.Update(lv, dt)

	for _, icon := range lv.Icons {
		if !icon.Gone {
			icon.Update(lv, dt)
		}
	}
	for _, bullet := range lv.Bullets {
		if !bullet.Gone {
			bullet.Update(lv, dt)
		}
	}
	for _, brick := range lv.Bricks {
		if !brick.Destroyed {
			brick.Update(lv)
		}
	}

	lv.compact()

	if lv.BreakableRemaining() == 0 {
		lv.levelIsComplete()
	} else if len(lv.Balls) == 0 {
		lv.loseALife()
	}
}

// compact drops destroyed entities from the collections.
func (lv *Level) compact() {
	balls := lv.Balls[:0]
	for _, b := range lv.Balls {
		if !b.Gone {
			balls = append(balls, b)
		}
	}
	lv.Balls = balls

	bricks := lv.Bricks[:0]
	for _, b := range lv.Bricks {
		if !b.Destroyed {
			bricks = append(bricks, b)
		}
	}
	lv.Bricks = bricks

	icons := lv.Icons[:0]
	for _, ic := range lv.Icons {
		if !ic.Gone {
			icons = append(icons, ic)
		}
	}
	lv.Icons = icons

	bullets := lv.Bullets[:0]
	for _, bl := range lv.Bullets {
		if !bl.Gone {
			bullets = append(bullets, bl)
		}
	}
	lv.Bullets = bullets
}

// BreakableRemaining counts the breakable bricks still standing.
func (lv *Level) BreakableRemaining() int {
	n := 0
	for _, b := range lv.Bricks {
		if !b.Destroyed && b.Breakable {
			n++
		}
	}
	return n
}

// levelIsComplete ends the level and computes the bonus: the full "BONUS"
// sequence in order is worth 5000, all five letters in any order 2000,
// plus 100 per remaining life.
func (lv *Level) levelIsComplete() {
	lv.GameIsActive = false
	lv.LevelComplete = true
	lv.Elapsed = 0

	if len(lv.BonusOrder) == 5 {
		if lv.BonusOrder == "BONUS" {
			lv.BonusScore = 5000
		} else {
			lv.BonusScore = 2000
		}
	}
	lv.BonusScore += lv.session.Lives * 100

	lv.emit(SoundLevelComplete, NormalVolume, 0)
}

// loseALife decrements lives and routes to LifeLost or GameOver.
func (lv *Level) loseALife() {
	lv.GameIsActive = false
	lv.session.Lives--

	if lv.session.Lives == 0 {
		lv.GameOver = true
		lv.emit(SoundGameOver, NormalVolume, 0)
	} else {
		lv.LostALife = true
	}

	lv.Elapsed = 0
	lv.emit(SoundLoseLife, NormalVolume, 0)
}

// resizePaddle replaces the paddle with the next size up or down, copying
// its power-up state over. Size is tied to the paddle's rectangle, so the
// instance is replaced rather than mutated.
func (lv *Level) resizePaddle(lengthen bool) {
	old := lv.Paddle

	var size PaddleSize
	if lengthen {
		if old.Size == PaddleShort {
			size = PaddleNormal
		} else {
			size = PaddleLong
		}
	} else {
		if old.Size == PaddleLong {
			size = PaddleNormal
		} else {
			size = PaddleShort
		}
	}

	lv.Paddle = NewPaddle(lv, size)
	lv.Paddle.CopyPropertiesFrom(old)

	if lengthen {
		// A longer paddle can now stick out past the boundary
		lv.Paddle.ClampToBoundary(lv.Boundary)

		// Lengthening is strong, so the balls get faster in exchange
		for _, ball := range lv.Balls {
			if !ball.Gone {
				ball.ChangeSpeed(true)
			}
		}
		return
	}

	// A shrunk paddle can leave magnetic balls hanging in the air; those
	// drop straight down.
	kept := lv.Paddle.MagneticBalls[:0]
	for _, ball := range lv.Paddle.MagneticBalls {
		if ball.Box.CX < lv.Paddle.Box.Left() || ball.Box.CX > lv.Paddle.Box.Right() {
			dropped := ball.convertTo(lv, ball.Invincible, false)
			dropped.Speed = 200
			dropped.Angle = -90
			dropped.SetVelocity()
		} else {
			kept = append(kept, ball)
		}
	}
	lv.Paddle.MagneticBalls = kept
}
