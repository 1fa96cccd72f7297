package game

import (
	"math"

	"github.com/vovakirdan/paranoid/internal/core"
)

// Ball is the primary moving entity. Its kind is two orthogonal tags:
// invincibility (passes through breakable bricks) and magnetism (stuck to
// the paddle, moving only with it). Velocity is held as (speed, angle)
// with the derived per-axis components cached; SetVelocity is the single
// source of truth for the derivation.
type Ball struct {
	Box core.Box

	Speed float64 // px/s, clamped to [BallMinSpeed, BallMaxSpeed]
	Angle float64 // Degrees, 0 = right, 90 = up

	ChangeX float64 // Derived px/s
	ChangeY float64

	Invincible bool
	Magnetic   bool

	// Collision context. level is nil on non-gameplay screens, which
	// skips paddle, brick, and score interactions.
	boundary Boundary
	level    *Level

	Gone bool
}

// NewBall creates a ball at the spawn point above the paddle, launched at
// 45 degrees at minimum speed.
func NewBall(bd Boundary, lv *Level, invincible, magnetic bool) *Ball {
	b := &Ball{
		Box:        core.NewBox(bd.CenterX, bd.InnerBottom+80, BallSize, BallSize),
		Speed:      BallMinSpeed,
		Angle:      45,
		Invincible: invincible,
		Magnetic:   magnetic,
		boundary:   bd,
		level:      lv,
	}
	b.SetVelocity()
	return b
}

// SetVelocity derives ChangeX and ChangeY from Speed and Angle, clamping
// Speed to its bounds first. Every mutation of Speed or Angle must call
// this before the next position update.
func (b *Ball) SetVelocity() {
	b.Speed = core.ClampF(b.Speed, BallMinSpeed, BallMaxSpeed)

	b.ChangeX = b.Speed * math.Cos(b.Angle*math.Pi/180)
	b.ChangeY = b.Speed * math.Sin(b.Angle*math.Pi/180)
}

// ChangeVelocity computes the bounce off the paddle top from where along
// the paddle's width the ball's center lies. Hits nearer the edges launch
// shallower and faster; center hits are slower and steeper.
func (b *Ball) ChangeVelocity() {
	difference := b.Box.CX - b.level.Paddle.Box.Left()

	width := b.level.Paddle.Box.Width()
	const (
		middle       = 20.0 // Width of the paddle's middle zone
		lowestAngle  = 25.0
		highestAngle = 70.0
		highestSpeed = 40.0
	)

	switch {
	// Hits the left side
	case difference < width/2-middle/2:
		angle := lowestAngle + difference
		if angle > highestAngle {
			angle = highestAngle
		}

		b.Angle = 180 - angle // Bounce to the left
		b.Speed += highestSpeed - difference

	// Hits the middle
	case difference <= width/2+middle/2:
		// A ball moving right keeps moving right
		if b.ChangeX > 0 {
			b.Angle = 55
		} else {
			b.Angle = 180 - 55
		}
		b.Speed -= 20

	// Hits the right side
	default:
		angle := width - difference + lowestAngle
		if angle > highestAngle {
			angle = highestAngle
		}

		b.Angle = angle
		b.Speed += difference - width + highestSpeed
	}

	b.SetVelocity()
}

// Update integrates one axis at a time: X then Y, resolving collisions
// against boundary, bricks, and paddle after each axis. Axis separation
// attributes every collision to exactly one axis per tick.
func (b *Ball) Update(dt float64) {
	if b.Magnetic {
		b.updateMagnetic(dt)
		return
	}

	b.Box.CX += float64(int(b.ChangeX * dt))
	b.collideBoundaryX()
	b.collideBricksX()
	b.collidePaddleX()

	b.Box.CY += float64(int(b.ChangeY * dt))
	b.collideBoundaryY()
	b.collideBricksY()
	b.collidePaddleY()
}

// updateMagnetic moves the ball with the paddle. It must run before the
// paddle's own update; reading the paddle's applied velocity after the
// paddle moved makes the ball overhang when the paddle hits the boundary.
func (b *Ball) updateMagnetic(dt float64) {
	lv := b.level

	b.ChangeX = 0
	if lv.LeftPressed && !lv.RightPressed {
		b.ChangeX = -lv.Paddle.Speed
	} else if lv.RightPressed && !lv.LeftPressed {
		b.ChangeX = lv.Paddle.Speed
	}

	// Don't slide across a paddle pinned against the boundary
	if lv.Paddle.Box.Left() == b.boundary.InnerLeft && lv.LeftPressed ||
		lv.Paddle.Box.Right() == b.boundary.InnerRight && lv.RightPressed {
		b.ChangeX = 0
	}

	if b.ChangeX != 0 {
		b.Box.CX += float64(int(b.ChangeX * dt))
		b.collideBoundaryX()
	}
}

func (b *Ball) collideBoundaryX() {
	switch {
	case b.Box.Right() > b.boundary.InnerRight:
		b.Box.SetRight(b.boundary.InnerRight)
		b.ChangeX *= -1

		if b.level != nil {
			b.level.emit(SoundHitSide, NormalVolume, 1)
		}

	case b.Box.Left() < b.boundary.InnerLeft:
		b.Box.SetLeft(b.boundary.InnerLeft)
		b.ChangeX *= -1

		if b.level != nil {
			b.level.emit(SoundHitSide, NormalVolume, -1)
		}
	}
}

func (b *Ball) collideBoundaryY() {
	switch {
	case b.Box.Top() > b.boundary.InnerTop:
		b.Box.SetTop(b.boundary.InnerTop)
		b.ChangeY *= -1

		if b.level != nil {
			b.level.emit(SoundHitTop, NormalVolume, 0)
		}

	// Fullscreen boundaries bounce at the bottom forever
	case b.boundary.Fullscreen && b.Box.Bottom() < b.boundary.InnerBottom:
		b.Box.SetBottom(b.boundary.InnerBottom)
		b.ChangeY *= -1

		if b.level != nil {
			b.level.emit(SoundHitBottom, NormalVolume, 0)
		}

	// Below the field: the ball is lost. The level evaluates the
	// life-loss trigger once the active ball collection is empty.
	case b.Box.Top() < b.boundary.InnerBottom:
		b.Gone = true
	}
}

// overlappingBricks returns the live bricks the ball currently overlaps.
func (b *Ball) overlappingBricks() []*Brick {
	if b.level == nil {
		return nil
	}
	var hits []*Brick
	for _, br := range b.level.Bricks {
		if !br.Destroyed && b.Box.Overlaps(br.Box) {
			hits = append(hits, br)
		}
	}
	return hits
}

func (b *Ball) collideBricksX() {
	hits := b.overlappingBricks()
	if len(hits) == 0 {
		return
	}

	if b.Invincible {
		// Direction flips only on an unbreakable, non-barrier brick;
		// breakable bricks are passed through undeflected.
		for _, br := range hits {
			if !br.Breakable && !br.SafetyBarrier {
				if b.ChangeX > 0 {
					b.Box.SetRight(br.Box.Left())
				} else {
					b.Box.SetLeft(br.Box.Right())
				}
				b.ChangeX *= -1
				break
			}
		}
	} else {
		br := hits[0]

		// A freshly spawned safety barrier can overlap a ball moving
		// horizontally; deflecting on that contact was a visible bug.
		if !br.SafetyBarrier {
			if b.ChangeX > 0 {
				b.Box.SetRight(br.Box.Left())
			} else {
				b.Box.SetLeft(br.Box.Right())
			}

			// Change direction only once even when several bricks overlap
			b.ChangeX *= -1
		}
	}

	// Every overlapping brick still receives the hit side effect
	for _, br := range hits {
		br.Hit(b.level)
	}
}

func (b *Ball) collideBricksY() {
	hits := b.overlappingBricks()
	if len(hits) == 0 {
		return
	}

	if b.Invincible {
		// Vertically the barrier does deflect, so it can still save
		// an invincible ball from falling through.
		for _, br := range hits {
			if !br.Breakable || br.SafetyBarrier {
				if b.ChangeY > 0 {
					b.Box.SetTop(br.Box.Bottom())
				} else {
					b.Box.SetBottom(br.Box.Top())
				}
				b.ChangeY *= -1
				break
			}
		}
	} else {
		br := hits[0]
		if b.ChangeY > 0 {
			b.Box.SetTop(br.Box.Bottom())
		} else {
			b.Box.SetBottom(br.Box.Top())
		}
		b.ChangeY *= -1
	}

	for _, br := range hits {
		br.Hit(b.level)
	}
}

func (b *Ball) collidePaddleX() {
	if b.level == nil || !b.Box.Overlaps(b.level.Paddle.Box) {
		return
	}
	p := b.level.Paddle
	b.level.emit(SoundHitPaddle, NormalVolume, 0)

	// Both the ball and the paddle move, so side attribution is keyed on
	// the ball's direction and which side of the paddle center it is on.
	// Comparing against the paddle's edge instead of its center was
	// found to misfire.
	switch {
	// Moving left into the paddle's left side
	case b.ChangeX < 0 && b.Box.CX < p.Box.CX:
		b.Angle = 180 + 15
		b.Speed += 100
		b.SetVelocity()

	// Moving right into the paddle's right side
	case b.ChangeX > 0 && b.Box.CX > p.Box.CX:
		b.Angle = -15
		b.Speed += 100
		b.SetVelocity()

	// Moving right into the paddle's left side
	case b.ChangeX > 0:
		b.Box.SetRight(p.Box.Left())
		b.ChangeX *= -1

	// Moving left into the paddle's right side
	case b.ChangeX < 0:
		b.Box.SetLeft(p.Box.Right())
		b.ChangeX *= -1
	}
}

func (b *Ball) collidePaddleY() {
	if b.level == nil || !b.Box.Overlaps(b.level.Paddle.Box) {
		return
	}
	p := b.level.Paddle
	b.level.emit(SoundHitPaddle, NormalVolume, 0)

	// The ball can clip the paddle's side while moving vertically, so
	// the side branches come first.
	switch {
	// Moving down past the paddle top, left of the paddle
	case b.ChangeY < 0 && b.Box.CY < p.Box.Top() && b.Box.CX < p.Box.Left():
		b.Angle = 180 + 15
		b.Speed += 100
		b.SetVelocity()

	// Moving down past the paddle top, right of the paddle
	case b.ChangeY < 0 && b.Box.CY < p.Box.Top() && b.Box.CX > p.Box.Right():
		b.Angle = -15
		b.Speed += 100
		b.SetVelocity()

	// Hitting the paddle's underside
	case b.ChangeY > 0:
		b.Box.SetTop(p.Box.Bottom())
		b.ChangeY *= -1

	// Landing on the paddle top: run the conversion state machine
	case b.ChangeY < 0:
		b.Box.SetBottom(p.Box.Top())
		b.ChangeProperties()
	}
}

// ChangeProperties is the ball type-conversion state machine, invoked when
// the ball legitimately lands on the paddle top. Order matters:
// invincibility first, then magnetism, then splitting.
func (b *Ball) ChangeProperties() {
	lv := b.level
	p := lv.Paddle

	ball := b
	if p.InvincibleCharges > 0 {
		if !b.Invincible {
			ball = b.convertTo(lv, true, false)
		}
		p.InvincibleCharges--
	} else if b.Invincible {
		ball = b.convertTo(lv, false, false)
	}

	if p.Magnetic {
		stuck := ball.convertTo(lv, ball.Invincible, true)
		p.MagneticBalls = append(p.MagneticBalls, stuck)
	} else {
		ball.ChangeVelocity()

		if p.SplitCharges > 0 {
			ball.splitIntoTwo(lv)
		}
	}
}

// convertTo replaces the ball with a new instance of the target kind at
// the same position. The old instance is destroyed; the new one starts at
// default speed and angle.
func (b *Ball) convertTo(lv *Level, invincible, magnetic bool) *Ball {
	ball := NewBall(b.boundary, lv, invincible, magnetic)
	ball.Box.CX = b.Box.CX
	ball.Box.CY = b.Box.CY
	ball.changeHorizontalVelocity()

	lv.Balls = append(lv.Balls, ball)
	b.Gone = true

	return ball
}

// splitIntoTwo clones the ball with a mirrored X velocity and consumes one
// split charge.
func (b *Ball) splitIntoTwo(lv *Level) {
	ball := NewBall(b.boundary, lv, b.Invincible, b.Magnetic)
	ball.Box.CX = b.Box.CX
	ball.Box.CY = b.Box.CY
	ball.ChangeX = -b.ChangeX
	ball.ChangeY = b.ChangeY

	lv.Balls = append(lv.Balls, ball)
	lv.Paddle.SplitCharges--
}

// changeHorizontalVelocity launches a newly-created ball leftward when it
// sits on the left half of the paddle. A fresh ball's ChangeX is always
// positive, which would otherwise default every new ball rightward.
func (b *Ball) changeHorizontalVelocity() {
	if b.level != nil && b.Box.CX < b.level.Paddle.Box.CX {
		b.ChangeX = -1
	}
}

// ChangeSpeed adjusts the ball's speed by the fixed increment while
// preserving the current direction signs. The stored angle may be stale
// relative to the actual direction after wall bounces, so the derived
// components are re-signed explicitly.
func (b *Ball) ChangeSpeed(increase bool) {
	currentChangeX := b.ChangeX
	currentChangeY := b.ChangeY

	if increase {
		b.Speed += SpeedIncrement
	} else {
		b.Speed -= SpeedDecrement
	}
	b.SetVelocity()

	if (currentChangeX < 0 && b.ChangeX > 0) || (currentChangeX > 0 && b.ChangeX < 0) {
		b.ChangeX *= -1
	}
	if (currentChangeY < 0 && b.ChangeY > 0) || (currentChangeY > 0 && b.ChangeY < 0) {
		b.ChangeY *= -1
	}
}
