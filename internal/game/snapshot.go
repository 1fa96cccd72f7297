package game

import (
	"math"

	"github.com/vovakirdan/paranoid/internal/core"
)

// BallSnap captures one ball. Positions and velocities are float64 because
// the simulation is; Float64bits keeps the hash stable.
type BallSnap struct {
	X, Y       float64
	Speed      float64
	Angle      float64
	ChangeX    float64
	ChangeY    float64
	Invincible bool
	Magnetic   bool
}

// BrickSnap captures one live brick, including the transient safety barrier.
type BrickSnap struct {
	Kind       BrickKind
	X, Y       float64
	Stage      int
	HasBeenHit bool
	Icon       IconKind
}

// IconSnap captures one falling icon.
type IconSnap struct {
	Kind IconKind
	X, Y float64
}

// BulletSnap captures one bullet in flight.
type BulletSnap struct {
	X, Y float64
}

// Snapshot contains the complete game state for replay and save. Only the
// live entities are captured; destroyed ones are already compacted away.
type Snapshot struct {
	LevelNumber int
	Demo        bool

	Score        int
	Lives        int
	DisplayScore int

	PaddleX           float64
	PaddleSize        PaddleSize
	Magnetic          bool
	ShooterArmed      bool
	InvincibleCharges int
	SplitCharges      int

	GameIsActive  bool
	LostALife     bool
	LevelComplete bool
	GameOver      bool
	BonusAdded    bool
	LoadNextLevel bool

	BonusOrder  string
	BonusScore  int
	Elapsed     float64
	ElapsedCopy float64

	Paused bool
	Ended  bool
	Won    bool

	Balls   []BallSnap
	Bricks  []BrickSnap
	Icons   []IconSnap
	Bullets []BulletSnap

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	lv := g.level

	snap := Snapshot{
		LevelNumber: lv.Number,
		Demo:        lv.Demo,

		Score:        g.session.Score,
		Lives:        g.session.Lives,
		DisplayScore: g.session.DisplayScore,

		PaddleX:           lv.Paddle.Box.CX,
		PaddleSize:        lv.Paddle.Size,
		Magnetic:          lv.Paddle.Magnetic,
		ShooterArmed:      lv.Paddle.ShooterArmed,
		InvincibleCharges: lv.Paddle.InvincibleCharges,
		SplitCharges:      lv.Paddle.SplitCharges,

		GameIsActive:  lv.GameIsActive,
		LostALife:     lv.LostALife,
		LevelComplete: lv.LevelComplete,
		GameOver:      lv.GameOver,
		BonusAdded:    lv.BonusAdded,
		LoadNextLevel: lv.LoadNextLevel,

		BonusOrder:  lv.BonusOrder,
		BonusScore:  lv.BonusScore,
		Elapsed:     lv.Elapsed,
		ElapsedCopy: lv.elapsedCopy,

		Paused: g.paused,
		Ended:  g.gameOver,
		Won:    g.won,

		RNGState: g.rng.State(),
	}

	for _, b := range lv.Balls {
		if b.Gone {
			continue
		}
		snap.Balls = append(snap.Balls, BallSnap{
			X: b.Box.CX, Y: b.Box.CY,
			Speed: b.Speed, Angle: b.Angle,
			ChangeX: b.ChangeX, ChangeY: b.ChangeY,
			Invincible: b.Invincible, Magnetic: b.Magnetic,
		})
	}
	for _, br := range lv.Bricks {
		if br.Destroyed {
			continue
		}
		snap.Bricks = append(snap.Bricks, BrickSnap{
			Kind: br.Kind,
			X:    br.Box.CX, Y: br.Box.CY,
			Stage:      br.Stage,
			HasBeenHit: br.HasBeenHit,
			Icon:       br.Icon,
		})
	}
	for _, ic := range lv.Icons {
		if ic.Gone {
			continue
		}
		snap.Icons = append(snap.Icons, IconSnap{Kind: ic.Kind, X: ic.Box.CX, Y: ic.Box.CY})
	}
	for _, bl := range lv.Bullets {
		if bl.Gone {
			continue
		}
		snap.Bullets = append(snap.Bullets, BulletSnap{X: bl.Box.CX, Y: bl.Box.CY})
	}

	return snap
}

// ApplySnapshot restores game state from a snapshot. The current level's
// object graph is discarded and rebuilt.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.session = &Session{
		Score:        snap.Score,
		Lives:        snap.Lives,
		LevelNumber:  snap.LevelNumber,
		DisplayScore: snap.DisplayScore,
	}
	if g.rng == nil {
		g.rng = NewSimpleRNG(0)
	}
	g.rng.SetState(snap.RNGState)

	lv := &Level{
		Number:   snap.LevelNumber,
		Demo:     snap.Demo,
		session:  g.session,
		rng:      g.rng,
		Boundary: NewPlayingFieldBoundary(),

		GameIsActive:  snap.GameIsActive,
		LostALife:     snap.LostALife,
		LevelComplete: snap.LevelComplete,
		GameOver:      snap.GameOver,
		BonusAdded:    snap.BonusAdded,
		LoadNextLevel: snap.LoadNextLevel,

		BonusOrder:  snap.BonusOrder,
		BonusScore:  snap.BonusScore,
		Elapsed:     snap.Elapsed,
		elapsedCopy: snap.ElapsedCopy,
	}

	paddle := &Paddle{
		Box:   core.NewBox(snap.PaddleX, lv.Boundary.InnerBottom+20, snap.PaddleSize.Width(), PaddleHeight),
		Size:  snap.PaddleSize,
		Speed: PaddleSpeed,

		Magnetic:          snap.Magnetic,
		ShooterArmed:      snap.ShooterArmed,
		InvincibleCharges: snap.InvincibleCharges,
		SplitCharges:      snap.SplitCharges,
		Demo:              snap.Demo,
	}
	lv.Paddle = paddle

	for _, bs := range snap.Balls {
		ball := &Ball{
			Box:        core.NewBox(bs.X, bs.Y, BallSize, BallSize),
			Speed:      bs.Speed,
			Angle:      bs.Angle,
			ChangeX:    bs.ChangeX,
			ChangeY:    bs.ChangeY,
			Invincible: bs.Invincible,
			Magnetic:   bs.Magnetic,
			boundary:   lv.Boundary,
			level:      lv,
		}
		lv.Balls = append(lv.Balls, ball)
		if ball.Magnetic {
			paddle.MagneticBalls = append(paddle.MagneticBalls, ball)
		}
	}

	for _, brs := range snap.Bricks {
		var brick *Brick
		if brs.Kind == BrickBarrier {
			brick = NewSafetyBarrier(lv.Boundary)
		} else {
			spec := brickSpecs[brs.Kind]
			brick = &Brick{
				Kind:      brs.Kind,
				Breakable: spec.breakable,
				Stages:    spec.stages,
				Score:     spec.score,
				Letter:    spec.letter,
				Box:       core.NewBox(0, 0, BrickWidth, BrickHeight),
			}
		}
		brick.Box.CX = brs.X
		brick.Box.CY = brs.Y
		brick.Stage = brs.Stage
		brick.HasBeenHit = brs.HasBeenHit
		brick.Icon = brs.Icon
		lv.Bricks = append(lv.Bricks, brick)
	}

	for _, is := range snap.Icons {
		lv.Icons = append(lv.Icons, NewIcon(is.Kind, is.X, is.Y))
	}
	for _, bls := range snap.Bullets {
		bullet := &Bullet{Box: core.NewBox(bls.X, bls.Y, BulletWidth, BulletHeight)}
		lv.Bullets = append(lv.Bullets, bullet)
	}

	g.level = lv
	g.paused = snap.Paused
	g.gameOver = snap.Ended
	g.won = snap.Won
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.LevelNumber) //#nosec G115 -- hash computation
	h = h*31 + b2u(snap.Demo)
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DisplayScore) //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.PaddleSize) //#nosec G115 -- hash computation
	h = h*31 + b2u(snap.Magnetic)
	h = h*31 + b2u(snap.ShooterArmed)
	h = h*31 + uint64(snap.InvincibleCharges) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SplitCharges)      //#nosec G115 -- hash computation

	h = h*31 + b2u(snap.GameIsActive)
	h = h*31 + b2u(snap.LostALife)
	h = h*31 + b2u(snap.LevelComplete)
	h = h*31 + b2u(snap.GameOver)
	h = h*31 + b2u(snap.BonusAdded)
	h = h*31 + b2u(snap.LoadNextLevel)

	for _, c := range []byte(snap.BonusOrder) {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.BonusScore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Elapsed)
	h = h*31 + math.Float64bits(snap.ElapsedCopy)

	for _, b := range snap.Balls {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.Speed)
		h = h*31 + math.Float64bits(b.Angle)
		h = h*31 + math.Float64bits(b.ChangeX)
		h = h*31 + math.Float64bits(b.ChangeY)
		h = h*31 + b2u(b.Invincible)
		h = h*31 + b2u(b.Magnetic)
	}
	for _, br := range snap.Bricks {
		h = h*31 + uint64(br.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(br.X)
		h = h*31 + math.Float64bits(br.Y)
		h = h*31 + uint64(br.Stage) //#nosec G115 -- hash computation
		h = h*31 + b2u(br.HasBeenHit)
		h = h*31 + uint64(br.Icon) //#nosec G115 -- hash computation
	}
	for _, ic := range snap.Icons {
		h = h*31 + uint64(ic.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(ic.X)
		h = h*31 + math.Float64bits(ic.Y)
	}
	for _, bl := range snap.Bullets {
		h = h*31 + math.Float64bits(bl.X)
		h = h*31 + math.Float64bits(bl.Y)
	}

	h = h*31 + snap.RNGState
	return h
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
