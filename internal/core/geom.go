// Package core provides fundamental types for the game: simulation-space
// geometry, input frames, runtime config, and the cell screen buffer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Box is an axis-aligned rectangle in simulation space, stored as a center
// point plus half extents. Simulation space is measured in pixels with the
// Y axis pointing up, so Top is the largest Y edge.
type Box struct {
	CX, CY float64 // Center position
	HW, HH float64 // Half width and half height
}

// NewBox creates a box from a center point and full dimensions.
func NewBox(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, HW: w / 2, HH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.HW }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.HW }

// Top returns the y-coordinate of the top edge (Y up).
func (b Box) Top() float64 { return b.CY + b.HH }

// Bottom returns the y-coordinate of the bottom edge (Y up).
func (b Box) Bottom() float64 { return b.CY - b.HH }

// Width returns the full width.
func (b Box) Width() float64 { return 2 * b.HW }

// Height returns the full height.
func (b Box) Height() float64 { return 2 * b.HH }

// SetLeft moves the box so its left edge sits at x.
func (b *Box) SetLeft(x float64) { b.CX = x + b.HW }

// SetRight moves the box so its right edge sits at x.
func (b *Box) SetRight(x float64) { b.CX = x - b.HW }

// SetTop moves the box so its top edge sits at y.
func (b *Box) SetTop(y float64) { b.CY = y - b.HH }

// SetBottom moves the box so its bottom edge sits at y.
func (b *Box) SetBottom(y float64) { b.CY = y + b.HH }

// Overlaps reports whether two boxes intersect. Touching edges do not count
// as an overlap, matching sprite collision in the simulation.
func (b Box) Overlaps(other Box) bool {
	if b.Left() >= other.Right() || other.Left() >= b.Right() {
		return false
	}
	if b.Bottom() >= other.Top() || other.Bottom() >= b.Top() {
		return false
	}
	return true
}

// Rect is an integer rectangle in screen-cell space (top-left origin, Y
// down). Used only by the Screen drawing helpers.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
