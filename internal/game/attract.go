package game

import "github.com/vovakirdan/paranoid/internal/core"

// Attract is the menu screensaver: a batch of balls bouncing around a
// fullscreen boundary with no bricks or paddle.
type Attract struct {
	Boundary Boundary
	Balls    []*Ball
}

// NewAttract seeds the screensaver with a fixed number of balls at random
// non-overlapping positions. Launch angles are drawn from [45, 60) and
// every other ball starts flying the opposite way so the batch does not
// drift as a flock.
func NewAttract(seed int64) *Attract {
	a := &Attract{Boundary: NewFullscreenBoundary()}
	rng := NewSimpleRNG(seed)

	for i := 0; i < RandomBalls; i++ {
		ball := NewBall(a.Boundary, nil, false, false)
		ball.Angle = float64(rng.Range(45, 60))
		ball.SetVelocity()
		if i%2 == 1 {
			ball.ChangeX *= -1
			ball.ChangeY *= -1
		}

		a.place(rng, ball)
		a.Balls = append(a.Balls, ball)
	}
	return a
}

// place positions a ball at a random spot not overlapping any ball placed
// before it. The field dwarfs the balls, so a handful of retries always
// suffices.
func (a *Attract) place(rng *SimpleRNG, ball *Ball) {
	for {
		x := a.Boundary.InnerLeft + BallSize + float64(rng.Intn(int(a.Boundary.Width())-2*BallSize))
		y := a.Boundary.InnerBottom + BallSize + float64(rng.Intn(int(a.Boundary.Height())-2*BallSize))
		ball.Box.CX = x
		ball.Box.CY = y

		overlaps := false
		for _, other := range a.Balls {
			if ball.Box.Overlaps(other.Box) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			return
		}
	}
}

// Update advances all screensaver balls by one tick.
func (a *Attract) Update(dt float64) {
	for _, ball := range a.Balls {
		ball.Update(dt)
	}
}

// Render draws the balls dimly over the whole screen, behind menu text.
func (a *Attract) Render(dst *core.Screen) {
	vp := viewport{
		x0:   0,
		y0:   0,
		cols: dst.Width(),
		rows: dst.Height(),
		bd:   a.Boundary,
	}
	for _, ball := range a.Balls {
		dst.SetColored(vp.cellX(ball.Box.CX), vp.cellY(ball.Box.CY), '●', core.ColorGray)
	}
}
