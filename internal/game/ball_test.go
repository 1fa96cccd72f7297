package game

import (
	"math"
	"testing"
)

// newTestLevel builds level 1 with a fixed seed.
func newTestLevel(lives int) (*Level, *Session) {
	s := NewSession(lives)
	def, _ := GetLevel(1)
	lv := NewLevel(def, s, NewSimpleRNG(1), false)
	return lv, s
}

func TestSetVelocityClampsSpeed(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]

	b.Speed = 100
	b.SetVelocity()
	if b.Speed != BallMinSpeed {
		t.Errorf("Speed below minimum not clamped: %f", b.Speed)
	}

	b.Speed = 2000
	b.SetVelocity()
	if b.Speed != BallMaxSpeed {
		t.Errorf("Speed above maximum not clamped: %f", b.Speed)
	}
}

func TestSetVelocityComponents(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]

	b.Speed = 600
	b.Angle = 90 // Straight up
	b.SetVelocity()

	if math.Abs(b.ChangeX) > 1e-9 {
		t.Errorf("Straight up should have no X component, got %f", b.ChangeX)
	}
	if math.Abs(b.ChangeY-600) > 1e-9 {
		t.Errorf("ChangeY = %f, want 600", b.ChangeY)
	}
}

func TestSetVelocityIdempotent(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]

	b.Speed = 600
	b.Angle = 37
	b.SetVelocity()
	cx, cy := b.ChangeX, b.ChangeY

	b.SetVelocity()
	if b.ChangeX != cx || b.ChangeY != cy {
		t.Errorf("Repeated derivation changed components: (%f, %f), want (%f, %f)",
			b.ChangeX, b.ChangeY, cx, cy)
	}
	if b.Speed != 600 {
		t.Errorf("Speed = %f, want 600", b.Speed)
	}
}

func TestChangeVelocityLeftSide(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	// 5px in from the paddle's left edge
	b.Box.CX = p.Box.Left() + 5
	b.Speed = 600
	b.ChangeVelocity()

	if b.Angle != 150 { // 180 - (25 + 5)
		t.Errorf("Angle = %f, want 150", b.Angle)
	}
	if b.Speed != 635 { // 600 + (40 - 5)
		t.Errorf("Speed = %f, want 635", b.Speed)
	}
	if b.ChangeX >= 0 {
		t.Error("Left-side hit should launch leftward")
	}
	if b.ChangeY <= 0 {
		t.Error("Paddle bounce should launch upward")
	}
}

func TestChangeVelocityLeftSideAngleCap(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	// Deep into the left zone: 25 + 60 would exceed the 70-degree cap
	b.Box.CX = p.Box.Left() + 60
	b.Speed = 600
	b.ChangeVelocity()

	if b.Angle != 110 { // 180 - 70
		t.Errorf("Angle = %f, want 110", b.Angle)
	}
}

func TestChangeVelocityMiddle(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	// Dead center of a normal paddle, moving right
	b.Box.CX = p.Box.Left() + p.Box.Width()/2
	b.Speed = 600
	b.Angle = 45
	b.SetVelocity()
	b.ChangeVelocity()

	if b.Angle != 55 {
		t.Errorf("Rightward middle hit: Angle = %f, want 55", b.Angle)
	}
	if b.Speed != 580 { // 600 - 20
		t.Errorf("Speed = %f, want 580", b.Speed)
	}

	// Moving left keeps moving left
	b.Box.CX = p.Box.Left() + p.Box.Width()/2
	b.Angle = 135
	b.SetVelocity()
	b.ChangeVelocity()

	if b.Angle != 125 { // 180 - 55
		t.Errorf("Leftward middle hit: Angle = %f, want 125", b.Angle)
	}
}

func TestChangeVelocityMiddleSpeedFloor(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	b.Box.CX = p.Box.Left() + p.Box.Width()/2
	b.Speed = BallMinSpeed
	b.Angle = 45
	b.SetVelocity()
	b.ChangeVelocity()

	// The -20 middle penalty cannot push the speed under the floor
	if b.Speed != BallMinSpeed {
		t.Errorf("Speed = %f, want %f", b.Speed, BallMinSpeed)
	}
}

func TestChangeVelocityRightSide(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	// 150px in on a 200px paddle
	b.Box.CX = p.Box.Left() + 150
	b.Speed = 600
	b.ChangeVelocity()

	if b.Angle != 70 { // 200 - 150 + 25 = 75, capped at 70
		t.Errorf("Angle = %f, want 70", b.Angle)
	}
	if b.Speed != 590 { // 600 + 150 - 200 + 40
		t.Errorf("Speed = %f, want 590", b.Speed)
	}
	if b.ChangeX <= 0 {
		t.Error("Right-side hit should launch rightward")
	}
}

func TestCollidePaddleSideHit(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	// Moving left into the paddle's left half
	b.Box.CX = p.Box.CX - 50
	b.Box.CY = p.Box.CY
	b.Speed = 600
	b.Angle = 190
	b.SetVelocity()
	b.collidePaddleX()

	if b.Angle != 195 { // 180 + 15
		t.Errorf("Angle = %f, want 195", b.Angle)
	}
	if b.Speed != 700 {
		t.Errorf("Speed = %f, want 700 (side hits speed up by 100)", b.Speed)
	}
}

func TestBoundaryBounceFlipsDirection(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]

	b.Box.SetRight(lv.Boundary.InnerRight + 10)
	before := b.ChangeX
	b.collideBoundaryX()

	if b.Box.Right() != lv.Boundary.InnerRight {
		t.Errorf("Ball not snapped to wall: right = %f", b.Box.Right())
	}
	if b.ChangeX != -before {
		t.Errorf("ChangeX = %f, want %f", b.ChangeX, -before)
	}
}

func TestBallLostBelowField(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]

	b.Box.CY = lv.Boundary.InnerBottom - 100
	b.collideBoundaryY()

	if !b.Gone {
		t.Error("Ball below the field should be gone")
	}
}

func TestFullscreenBoundaryBouncesAtBottom(t *testing.T) {
	bd := NewFullscreenBoundary()
	b := NewBall(bd, nil, false, false)

	b.Box.SetBottom(bd.InnerBottom - 10)
	b.ChangeY = -400
	b.collideBoundaryY()

	if b.Gone {
		t.Error("Fullscreen boundary should never lose balls")
	}
	if b.ChangeY != 400 {
		t.Errorf("ChangeY = %f, want 400", b.ChangeY)
	}
}

func TestChangeSpeedPreservesDirection(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]

	// Simulate a wall bounce that left the stored angle stale
	b.Speed = 600
	b.Angle = 45
	b.SetVelocity()
	b.ChangeX *= -1 // Now moving left while Angle still says right

	b.ChangeSpeed(true)

	if b.Speed != 650 {
		t.Errorf("Speed = %f, want 650", b.Speed)
	}
	if b.ChangeX >= 0 {
		t.Error("Speed change must not flip the travel direction")
	}
}

func TestConversionInvincible(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	p.InvincibleCharges = 3
	b.Box.CX = p.Box.CX
	b.Box.CY = p.Box.Top()
	b.ChangeProperties()

	if !b.Gone {
		t.Error("Converted ball should replace the original")
	}
	if p.InvincibleCharges != 2 {
		t.Errorf("InvincibleCharges = %d, want 2", p.InvincibleCharges)
	}

	replacement := lv.Balls[len(lv.Balls)-1]
	if !replacement.Invincible {
		t.Error("Replacement ball should be invincible")
	}
	if replacement.Box.CX != b.Box.CX || replacement.Box.CY != b.Box.CY {
		t.Error("Replacement should keep the original's position")
	}
}

func TestConversionInvincibleExpires(t *testing.T) {
	lv, _ := newTestLevel(3)
	p := lv.Paddle

	// An invincible ball landing with no charges left reverts to normal
	inv := NewBall(lv.Boundary, lv, true, false)
	inv.Box.CX = p.Box.CX
	inv.Box.CY = p.Box.Top()
	lv.Balls = append(lv.Balls, inv)

	inv.ChangeProperties()

	replacement := lv.Balls[len(lv.Balls)-1]
	if replacement.Invincible {
		t.Error("Ball should lose invincibility with no charges on the paddle")
	}
}

func TestConversionMagneticCatch(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	p.Magnetic = true
	b.Box.CX = p.Box.CX
	b.Box.CY = p.Box.Top()
	b.ChangeProperties()

	if len(p.MagneticBalls) != 1 {
		t.Fatalf("MagneticBalls = %d, want 1", len(p.MagneticBalls))
	}
	if !p.MagneticBalls[0].Magnetic {
		t.Error("Caught ball should be magnetic")
	}
}

func TestConversionInvincibleMagneticCatch(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	// Charges and magnetism together: the ball converts twice, first to
	// invincible, then to the stuck invincible kind.
	p.InvincibleCharges = 3
	p.Magnetic = true
	b.Box.CX = p.Box.CX
	b.Box.CY = p.Box.Top()
	b.ChangeProperties()

	if p.InvincibleCharges != 2 {
		t.Errorf("InvincibleCharges = %d, want 2 (one charge per catch)", p.InvincibleCharges)
	}
	if len(p.MagneticBalls) != 1 {
		t.Fatalf("MagneticBalls = %d, want 1", len(p.MagneticBalls))
	}

	stuck := p.MagneticBalls[0]
	if !stuck.Invincible || !stuck.Magnetic {
		t.Error("Caught ball should be both invincible and magnetic")
	}
	if stuck.Box.CX != b.Box.CX || stuck.Box.CY != b.Box.CY {
		t.Error("Caught ball should keep the original's position")
	}
	if !b.Gone {
		t.Error("Converted ball should replace the original")
	}

	// Compaction leaves only the stuck ball; both conversion intermediates
	// are gone.
	lv.compact()
	if len(lv.Balls) != 1 || lv.Balls[0] != stuck {
		t.Errorf("Balls after compaction = %d, want only the caught ball", len(lv.Balls))
	}
}

func TestConversionSplit(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	p.SplitCharges = 3
	b.Box.CX = p.Box.CX
	b.Box.CY = p.Box.Top()
	before := len(lv.Balls)
	b.ChangeProperties()

	if len(lv.Balls) != before+1 {
		t.Errorf("Ball count = %d, want %d", len(lv.Balls), before+1)
	}
	if p.SplitCharges != 2 {
		t.Errorf("SplitCharges = %d, want 2", p.SplitCharges)
	}

	clone := lv.Balls[len(lv.Balls)-1]
	if clone.ChangeX != -b.ChangeX {
		t.Error("Split clone should mirror the X velocity")
	}
}

func TestReleaseMagneticBalls(t *testing.T) {
	lv, _ := newTestLevel(3)
	b := lv.Balls[0]
	p := lv.Paddle

	p.Magnetic = true
	b.Box.CX = p.Box.CX
	b.Box.CY = p.Box.Top()
	b.ChangeProperties()

	p.ReleaseMagneticBalls(lv)

	if len(p.MagneticBalls) != 0 {
		t.Errorf("MagneticBalls = %d, want 0", len(p.MagneticBalls))
	}

	freed := lv.Balls[len(lv.Balls)-1]
	if freed.Magnetic {
		t.Error("Released ball should no longer be magnetic")
	}
}
