// Package term runs the bounce simulation in a terminal using tcell. The
// viewport is the terminal's cell grid and the body is a small boxed label.
package term

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/bounce"
)

// Defaults for a terminal run. Speeds are in cells per second.
const (
	DefaultSpeed = 12.0
	DefaultFPS   = 30
	DefaultLabel = "DVD"
)

// Options configures a terminal run.
type Options struct {
	Speed float64 // cells per second
	Angle float64 // radians, counter-clockwise from +X
	FPS   int
	Label string
}

// DefaultOptions returns a 30 FPS run at 12 cells/s and 45 degrees.
func DefaultOptions() Options {
	return Options{
		Speed: DefaultSpeed,
		Angle: bounce.DefaultAngle,
		FPS:   DefaultFPS,
		Label: DefaultLabel,
	}
}

// palette is the foreground color cycle, advanced on every wall contact.
var palette = []tcell.Color{
	tcell.ColorWhite,
	tcell.ColorRed,
	tcell.ColorYellow,
	tcell.ColorGreen,
	tcell.ColorAqua,
	tcell.ColorBlue,
	tcell.ColorFuchsia,
}

// Screen owns the body and draws it onto a tcell.Screen.
type Screen struct {
	screen   tcell.Screen
	opts     Options
	vp       bounce.Viewport
	body     bounce.Body
	colorIdx int
	sink     bounce.EventSink
	tick     uint64
}

// New creates a Screen on an already initialized tcell.Screen. The body
// starts in the middle of the terminal.
func New(screen tcell.Screen, opts Options) *Screen {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Label == "" {
		opts.Label = DefaultLabel
	}
	s := &Screen{screen: screen, opts: opts}
	s.vp = s.viewport()
	s.body = bounce.Init(s.vp, opts.Speed, opts.Angle)
	s.body.Size = s.boxSize()
	return s
}

// Body returns the current simulation state.
func (s *Screen) Body() bounce.Body {
	return s.body
}

// Viewport returns the current cell-grid viewport.
func (s *Screen) Viewport() bounce.Viewport {
	return s.vp
}

// Color returns the current foreground color of the box.
func (s *Screen) Color() tcell.Color {
	return palette[s.colorIdx]
}

// SetEventSink sets the receiver for contact events. Pass nil to disable.
func (s *Screen) SetEventSink(sink bounce.EventSink) {
	s.sink = sink
}

func (s *Screen) viewport() bounce.Viewport {
	w, h := s.screen.Size()
	return bounce.Viewport{Width: float64(w), Height: float64(h)}
}

// boxSize is the label plus a one-cell border and one space of padding on
// each side.
func (s *Screen) boxSize() bounce.Vec2 {
	return bounce.Vec2{X: float64(len([]rune(s.opts.Label)) + 4), Y: 3}
}

// Tick advances the simulation by dt seconds.
func (s *Screen) Tick(dt float64) bounce.Contact {
	var c bounce.Contact
	s.body, c = bounce.StepContacts(s.body, s.vp, dt)
	s.tick++
	if c != bounce.ContactNone {
		s.colorIdx = (s.colorIdx + 1) % len(palette)
		if s.sink != nil {
			s.sink.EmitContact(bounce.ContactEvent{
				Tick:     s.tick,
				Contact:  c,
				Position: s.body.Position,
				Velocity: s.body.Velocity,
			})
		}
	}
	return c
}

// Resize rebuilds the viewport from the terminal size and pulls the body
// back inside if the terminal shrank. A resize is not a contact: no event is
// emitted and the color stays.
func (s *Screen) Resize() {
	s.vp = s.viewport()
	s.body = settle(s.body, s.vp)
}

// settle clamps b flush against any wall it overlaps in vp. A velocity
// component is negated only when it points into that wall, so a body already
// moving away keeps its heading.
func settle(b bounce.Body, vp bounce.Viewport) bounce.Body {
	c := bounce.Detect(b, vp)
	if c.Has(bounce.ContactLeft) {
		b.Position.X = (b.Size.X - vp.Width) / 2
		if b.Velocity.X < 0 {
			b.Velocity.X = -b.Velocity.X
		}
	}
	if c.Has(bounce.ContactRight) {
		b.Position.X = (vp.Width - b.Size.X) / 2
		if b.Velocity.X > 0 {
			b.Velocity.X = -b.Velocity.X
		}
	}
	if c.Has(bounce.ContactBottom) {
		b.Position.Y = (b.Size.Y - vp.Height) / 2
		if b.Velocity.Y < 0 {
			b.Velocity.Y = -b.Velocity.Y
		}
	}
	if c.Has(bounce.ContactTop) {
		b.Position.Y = (vp.Height - b.Size.Y) / 2
		if b.Velocity.Y > 0 {
			b.Velocity.Y = -b.Velocity.Y
		}
	}
	return b
}

// Origin returns the top-left cell of the box.
func (s *Screen) Origin() (col, row int) {
	b := s.body
	x := b.Position.X + s.vp.Width/2 - b.Size.X/2
	y := s.vp.Height/2 - b.Position.Y - b.Size.Y/2
	return int(math.Round(x)), int(math.Round(y))
}

// Draw clears the terminal and paints the box.
func (s *Screen) Draw() {
	s.screen.Clear()
	style := tcell.StyleDefault.Foreground(s.Color()).Bold(true)

	col, row := s.Origin()
	label := []rune(s.opts.Label)
	w := len(label) + 4

	for i := 1; i < w-1; i++ {
		s.screen.SetContent(col+i, row, '─', nil, style)
		s.screen.SetContent(col+i, row+2, '─', nil, style)
	}
	s.screen.SetContent(col, row, '┌', nil, style)
	s.screen.SetContent(col+w-1, row, '┐', nil, style)
	s.screen.SetContent(col, row+2, '└', nil, style)
	s.screen.SetContent(col+w-1, row+2, '┘', nil, style)
	s.screen.SetContent(col, row+1, '│', nil, style)
	s.screen.SetContent(col+w-1, row+1, '│', nil, style)
	s.screen.SetContent(col+1, row+1, ' ', nil, style)
	s.screen.SetContent(col+w-2, row+1, ' ', nil, style)
	for i, r := range label {
		s.screen.SetContent(col+2+i, row+1, r, nil, style)
	}
	s.screen.Show()
}

// Run ticks and draws until Esc, q, or Ctrl-C is pressed or ctx is done.
// dt for each tick is the measured wall-clock time since the previous one.
// The caller owns the tcell.Screen and must Fini it afterwards.
func (s *Screen) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.FPS))
	defer ticker.Stop()

	s.screen.HideCursor()
	s.Draw()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !s.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			s.Tick(now.Sub(last).Seconds())
			last = now
			s.Draw()
		}
	}
}

// handleEvent reports false when the run should stop.
func (s *Screen) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return false
		}
	case *tcell.EventResize:
		s.screen.Sync()
		s.Resize()
		s.Draw()
	}
	return true
}
