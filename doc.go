// Package bounce is the simulation core of a "DVD screensaver": one sprite
// moving at constant velocity inside a fixed viewport, reversing a velocity
// component whenever it touches a wall.
//
// The core is a handful of pure functions over a plain [Body] value. A host
// loop owns the body and calls [Step] once per tick:
//
//	cfg := bounce.DefaultConfig()
//	vp := cfg.Viewport()
//	body := cfg.NewBody()
//	body.Size = bounce.Vec2{X: 100, Y: 60} // rendered size of the sprite
//
//	for each frame {
//		body = bounce.Step(body, vp, dt)
//		// draw the sprite centered at body.Position
//	}
//
// # Coordinates
//
// Positions have their origin at the viewport center with Y pointing up.
// [Body.Position] is the center of the sprite's bounding box. [Body.Edges]
// converts to viewport coordinates (origin at the bottom-left corner), which
// is where wall tests happen.
//
// # Reflection
//
// [Reflect] tests the four walls in order (left, right, bottom, top). A wall
// is touched when the box edge reaches or passes it; the matching velocity
// component is negated and the box is clamped flush against the wall. Axes
// are independent, so a corner hit reverses both components in one tick.
// There is no swept collision: contact is only checked after [Advance].
//
// [StepContacts] also returns the [Contact] bitmask for the tick. Hosts use
// it to react to hits and to publish [ContactEvent] values to an
// [EventSink].
//
// Hosts live in sub-packages: render (Ebitengine window), term (tcell
// terminal), sound (beep clicks on contact) and the ecs module (Donburi
// event bridge).
package bounce
