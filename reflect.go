package bounce

import "strings"

// Contact is a bitmask of the viewport walls touched in a single tick.
// Values can be combined with bitwise OR (e.g. ContactLeft | ContactTop).
type Contact uint8

const (
	ContactLeft   Contact = 1 << iota // left edge at or past x = 0
	ContactRight                      // right edge at or past x = Width
	ContactBottom                     // bottom edge at or past y = 0
	ContactTop                        // top edge at or past y = Height
)

// ContactNone means the body is strictly inside the viewport.
const ContactNone Contact = 0

// Has reports whether every wall in o is also set in c.
func (c Contact) Has(o Contact) bool {
	return c&o == o
}

// Horizontal reports whether the left or right wall was touched.
func (c Contact) Horizontal() bool {
	return c&(ContactLeft|ContactRight) != 0
}

// Vertical reports whether the bottom or top wall was touched.
func (c Contact) Vertical() bool {
	return c&(ContactBottom|ContactTop) != 0
}

// Corner reports whether walls on both axes were touched in the same tick.
func (c Contact) Corner() bool {
	return c.Horizontal() && c.Vertical()
}

func (c Contact) String() string {
	if c == ContactNone {
		return "none"
	}
	var parts []string
	if c&ContactLeft != 0 {
		parts = append(parts, "left")
	}
	if c&ContactRight != 0 {
		parts = append(parts, "right")
	}
	if c&ContactBottom != 0 {
		parts = append(parts, "bottom")
	}
	if c&ContactTop != 0 {
		parts = append(parts, "top")
	}
	return strings.Join(parts, "|")
}

// Detect returns the walls whose contact condition holds for b. Touching a
// wall exactly counts as contact.
func Detect(b Body, vp Viewport) Contact {
	e := b.Edges(vp)
	var c Contact
	if e.Left <= 0 {
		c |= ContactLeft
	}
	if e.Right >= vp.Width {
		c |= ContactRight
	}
	if e.Bottom <= 0 {
		c |= ContactBottom
	}
	if e.Top >= vp.Height {
		c |= ContactTop
	}
	return c
}

// Reflect bounces b off every wall it touches: the velocity component for
// that axis is negated and the position is clamped so the box sits flush
// against the wall. Each axis is handled independently, so a corner hit
// flips both components in one call.
//
// The four walls are tested in order left, right, bottom, top, each against
// the incoming position. When a body is at least as large as the viewport on
// an axis, both walls of that axis fire: the velocity component is flipped
// twice (no net change) and the later wall's clamp wins.
//
// Contact is detected after integration only. When a large dt carries the
// body well past a wall, the overshoot is dropped by the clamp rather than
// reflected back into the viewport.
func Reflect(b Body, vp Viewport) Body {
	out, _ := reflectContacts(b, vp)
	return out
}

func reflectContacts(b Body, vp Viewport) (Body, Contact) {
	c := Detect(b, vp)
	if c == ContactNone {
		return b, c
	}
	if c&ContactLeft != 0 {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = (b.Size.X - vp.Width) / 2
	}
	if c&ContactRight != 0 {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = (vp.Width - b.Size.X) / 2
	}
	if c&ContactBottom != 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = (b.Size.Y - vp.Height) / 2
	}
	if c&ContactTop != 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = (vp.Height - b.Size.Y) / 2
	}
	return b, c
}
