package game

import "github.com/vovakirdan/paranoid/internal/core"

// PaddleSize is the paddle's size variant. Size changes replace the paddle
// with a new instance (properties copied) rather than mutating in place.
type PaddleSize int

const (
	PaddleShort PaddleSize = iota
	PaddleNormal
	PaddleLong
)

// Width returns the paddle width in pixels for this size.
func (s PaddleSize) Width() float64 {
	switch s {
	case PaddleShort:
		return PaddleWidthShort
	case PaddleLong:
		return PaddleWidthLong
	default:
		return PaddleWidthNormal
	}
}

// String returns a short name for the size.
func (s PaddleSize) String() string {
	switch s {
	case PaddleShort:
		return "short"
	case PaddleLong:
		return "long"
	default:
		return "normal"
	}
}

// Paddle is the player's horizontally-moving rectangle, carrying the
// power-up state that the ball conversion machine reads.
type Paddle struct {
	Box  core.Box
	Size PaddleSize

	Speed   float64
	ChangeX float64 // Velocity applied last tick, px/s

	Magnetic          bool
	ShooterArmed      bool
	InvincibleCharges int
	SplitCharges      int

	// Balls currently stuck to the paddle in magnetic mode.
	MagneticBalls []*Ball

	// Demo paddles track the first ball instead of reading input.
	Demo bool
}

// NewPaddle creates a paddle of the given size at the spawn position.
func NewPaddle(lv *Level, size PaddleSize) *Paddle {
	return &Paddle{
		Box:   core.NewBox(lv.Boundary.CenterX, lv.Boundary.InnerBottom+20, size.Width(), PaddleHeight),
		Size:  size,
		Speed: PaddleSpeed,
	}
}

// Update moves the paddle by the held direction keys, or tracks the first
// ball in demo mode. Magnetic balls must already have updated this tick.
func (p *Paddle) Update(lv *Level, dt float64) {
	if p.Demo {
		if len(lv.Balls) > 0 {
			p.Box.CX = lv.Balls[0].Box.CX
		}
		p.ClampToBoundary(lv.Boundary)
		return
	}

	p.ChangeX = 0
	if lv.LeftPressed && !lv.RightPressed {
		p.ChangeX = -p.Speed
	} else if lv.RightPressed && !lv.LeftPressed {
		p.ChangeX = p.Speed
	}

	if p.ChangeX != 0 {
		p.Box.CX += float64(int(p.ChangeX * dt))
		p.ClampToBoundary(lv.Boundary)
	}
}

// ClampToBoundary stops the paddle at the field edges.
func (p *Paddle) ClampToBoundary(bd Boundary) {
	if p.Box.Right() > bd.InnerRight {
		p.Box.SetRight(bd.InnerRight)
	} else if p.Box.Left() < bd.InnerLeft {
		p.Box.SetLeft(bd.InnerLeft)
	}
}

// ReleaseMagneticBalls converts every stuck ball back to its free kind,
// bounces it off the paddle, and split-spawns if charges remain.
func (p *Paddle) ReleaseMagneticBalls(lv *Level) {
	for _, ball := range p.MagneticBalls {
		freed := ball.convertTo(lv, ball.Invincible, false)
		freed.ChangeVelocity()

		if p.SplitCharges > 0 {
			freed.splitIntoTwo(lv)
		}
	}
	p.MagneticBalls = p.MagneticBalls[:0]
}

// CopyPropertiesFrom carries the power-up state over from a replaced
// paddle. Used whenever the size variant changes.
func (p *Paddle) CopyPropertiesFrom(old *Paddle) {
	p.Box.CX = old.Box.CX
	p.Box.CY = old.Box.CY
	p.Magnetic = old.Magnetic
	p.ShooterArmed = old.ShooterArmed
	p.InvincibleCharges = old.InvincibleCharges
	p.SplitCharges = old.SplitCharges
	p.MagneticBalls = old.MagneticBalls
	p.Demo = old.Demo
}
