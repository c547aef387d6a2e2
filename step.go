package bounce

import "math"

// Init creates the body at the center of vp, which is the coordinate origin,
// moving at speed units per second in the direction given by angle (radians,
// counter-clockwise from +X). speed must not be negative.
//
// Size is left at zero; the host fills it in from the rendered asset once
// the asset's pixel size is known.
func Init(vp Viewport, speed, angle float64) Body {
	sin, cos := math.Sincos(angle)
	return Body{
		Velocity: Vec2{speed * cos, speed * sin},
	}
}

// Step runs one tick: Advance by dt, then Reflect against the viewport.
func Step(b Body, vp Viewport, dt float64) Body {
	return Reflect(Advance(b, dt), vp)
}

// StepContacts is Step that also reports which walls were touched this tick.
func StepContacts(b Body, vp Viewport, dt float64) (Body, Contact) {
	return reflectContacts(Advance(b, dt), vp)
}
