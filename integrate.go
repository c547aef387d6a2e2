package bounce

// Advance moves the body along its velocity for dt seconds. Velocity is left
// unchanged.
//
// dt is expected to come from a monotonic clock. A negative dt is not
// rejected; it simply runs the motion backwards.
func Advance(b Body, dt float64) Body {
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	return b
}
