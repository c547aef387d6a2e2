package bounce

import "math"

// Vec2 is a 2D vector used for positions, velocities, and sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Viewport is the fixed rectangle the body bounces inside. The coordinate
// system used for Body positions has its origin at the viewport center, with
// Y increasing upward.
type Viewport struct {
	Width, Height float64
}

// Body is the single moving sprite. Position is the center of its bounding
// box, not a corner. Size is the rendered extent in device pixels and must
// not be negative.
type Body struct {
	Position Vec2
	Velocity Vec2
	Size     Vec2
}

// Edges is a bounding box expressed in viewport coordinates: the origin is
// the bottom-left corner of the viewport and Top grows toward Height.
type Edges struct {
	Left, Right, Bottom, Top float64
}

// Edges returns the body's bounding box in viewport coordinates.
func (b Body) Edges(vp Viewport) Edges {
	cx := b.Position.X + vp.Width/2
	cy := b.Position.Y + vp.Height/2
	hw := b.Size.X / 2
	hh := b.Size.Y / 2
	return Edges{
		Left:   cx - hw,
		Right:  cx + hw,
		Bottom: cy - hh,
		Top:    cy + hh,
	}
}

// Speed returns the magnitude of the body's velocity.
func (b Body) Speed() float64 {
	return b.Velocity.Len()
}
