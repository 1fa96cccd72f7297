package game

// Boundary defines the playing-field coordinate frame that all collision
// math is relative to. The inner edges are the faces the entities collide
// with. Immutable after construction.
type Boundary struct {
	CenterX, CenterY float64

	InnerLeft   float64
	InnerRight  float64
	InnerTop    float64
	InnerBottom float64

	// Fullscreen changes the bottom-collision policy: balls bounce off
	// the bottom edge instead of falling through. Used by menu screens.
	Fullscreen bool
}

// NewPlayingFieldBoundary returns the gameplay boundary: the brick field
// plus the side panel excluded.
func NewPlayingFieldBoundary() Boundary {
	innerLeft := float64(ScreenPadding + BoundaryThickness)
	return Boundary{
		CenterX:     innerLeft + PlayingFieldWidth/2,
		CenterY:     ScreenHeight / 2,
		InnerLeft:   innerLeft,
		InnerRight:  innerLeft + PlayingFieldWidth,
		InnerBottom: innerLeft,
		InnerTop:    ScreenHeight - innerLeft,
	}
}

// NewFullscreenBoundary returns the boundary used by menu and attract
// screens: the full screen width, bouncing at the bottom.
func NewFullscreenBoundary() Boundary {
	b := NewPlayingFieldBoundary()
	b.CenterX = ScreenWidth / 2
	b.InnerRight = ScreenWidth - b.InnerLeft
	b.Fullscreen = true
	return b
}

// Width returns the inner width of the field.
func (b Boundary) Width() float64 {
	return b.InnerRight - b.InnerLeft
}

// Height returns the inner height of the field.
func (b Boundary) Height() float64 {
	return b.InnerTop - b.InnerBottom
}
