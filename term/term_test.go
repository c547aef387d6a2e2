package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/bounce"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

func cellRune(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestNewCentersBox(t *testing.T) {
	sim := newSimScreen(t, 80, 24)
	s := New(sim, DefaultOptions())

	if s.Viewport() != (bounce.Viewport{Width: 80, Height: 24}) {
		t.Errorf("Viewport = %v, want {80 24}", s.Viewport())
	}
	b := s.Body()
	if b.Size != (bounce.Vec2{X: 7, Y: 3}) {
		t.Errorf("Size = %v, want {7 3} for \"DVD\"", b.Size)
	}
	col, row := s.Origin()
	if col != 37 || row != 11 {
		t.Errorf("Origin = (%d, %d), want (37, 11)", col, row)
	}
}

func TestDrawBox(t *testing.T) {
	sim := newSimScreen(t, 40, 12)
	s := New(sim, Options{Label: "DVD"})
	s.Draw()

	col, row := s.Origin()
	want := []struct {
		dx, dy int
		r      rune
	}{
		{0, 0, '┌'}, {6, 0, '┐'}, {0, 2, '└'}, {6, 2, '┘'},
		{1, 0, '─'}, {0, 1, '│'}, {6, 1, '│'},
		{2, 1, 'D'}, {3, 1, 'V'}, {4, 1, 'D'},
	}
	for _, w := range want {
		if got := cellRune(sim, col+w.dx, row+w.dy); got != w.r {
			t.Errorf("cell (%d,%d) = %q, want %q", col+w.dx, row+w.dy, got, w.r)
		}
	}
}

func TestTickBouncesAndRecolors(t *testing.T) {
	sim := newSimScreen(t, 40, 12)
	s := New(sim, Options{Speed: 10, Angle: 0})

	var events []bounce.ContactEvent
	s.SetEventSink(bounce.EventSinkFunc(func(e bounce.ContactEvent) { events = append(events, e) }))

	// (40-7)/2 = 16.5 cells to the right wall at 10 cells/s.
	if c := s.Tick(1); c != bounce.ContactNone {
		t.Fatalf("early contact %v", c)
	}
	if s.Color() != tcell.ColorWhite {
		t.Errorf("Color = %v before contact, want white", s.Color())
	}
	c := s.Tick(1)
	if c != bounce.ContactRight {
		t.Fatalf("contact = %v, want right", c)
	}
	if s.Body().Position.X != 16.5 || s.Body().Velocity.X != -10 {
		t.Errorf("body after contact = %+v", s.Body())
	}
	if s.Color() != tcell.ColorRed {
		t.Errorf("Color = %v after contact, want red", s.Color())
	}
	if len(events) != 1 || events[0].Tick != 2 {
		t.Errorf("events = %+v, want one at tick 2", events)
	}

	s.Draw()
	col, _ := s.Origin()
	if col+7 != 40 {
		t.Errorf("box right edge at %d, want flush with column 40", col+7)
	}
}

func TestResizeKeepsBoxInside(t *testing.T) {
	sim := newSimScreen(t, 80, 24)
	s := New(sim, Options{Speed: 10, Angle: 0})
	for i := 0; i < 3; i++ {
		s.Tick(1)
	}
	// Body is now near x = 30; shrink the terminal under it.
	sim.SetSize(40, 12)
	s.Resize()

	e := s.Body().Edges(s.Viewport())
	if e.Left < 0 || e.Right > 40 || e.Bottom < 0 || e.Top > 12 {
		t.Errorf("box outside resized viewport: %+v", e)
	}
}

func TestResizeKeepsHeadingAwayFromWall(t *testing.T) {
	sim := newSimScreen(t, 80, 24)
	s := New(sim, Options{Speed: 10, Angle: 0})
	var events int
	s.SetEventSink(bounce.EventSinkFunc(func(bounce.ContactEvent) { events++ }))
	s.body.Position = bounce.Vec2{X: 30, Y: 0}
	s.body.Velocity = bounce.Vec2{X: -10, Y: 0}
	color := s.Color()

	// The right wall of a 40 column terminal lands on the box.
	sim.SetSize(40, 12)
	s.Resize()

	b := s.Body()
	if b.Position.X != 16.5 {
		t.Errorf("Position.X = %v, want 16.5 (flush right)", b.Position.X)
	}
	if b.Velocity.X != -10 {
		t.Errorf("Velocity.X = %v, want -10 (still moving away)", b.Velocity.X)
	}
	if c := s.Tick(0.1); c != bounce.ContactNone {
		t.Errorf("contact after resize = %v, want none", c)
	}
	if events != 0 {
		t.Errorf("events = %d, want 0", events)
	}
	if s.Color() != color {
		t.Errorf("color changed on resize")
	}
}

func TestResizeTurnsBodyMovingIntoWall(t *testing.T) {
	sim := newSimScreen(t, 80, 24)
	s := New(sim, Options{Speed: 10, Angle: 0})
	s.body.Position = bounce.Vec2{X: -30, Y: 8}
	s.body.Velocity = bounce.Vec2{X: -10, Y: 5}

	sim.SetSize(40, 12)
	s.Resize()

	b := s.Body()
	if b.Position != (bounce.Vec2{X: -16.5, Y: 4.5}) {
		t.Errorf("Position = %v, want {-16.5 4.5}", b.Position)
	}
	if b.Velocity != (bounce.Vec2{X: 10, Y: -5}) {
		t.Errorf("Velocity = %v, want {10 -5}", b.Velocity)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	sim := newSimScreen(t, 40, 12)
	s := New(sim, DefaultOptions())

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestHandleEventResize(t *testing.T) {
	sim := newSimScreen(t, 80, 24)
	s := New(sim, DefaultOptions())
	sim.SetSize(50, 20)
	if !s.handleEvent(tcell.NewEventResize(50, 20)) {
		t.Fatal("resize should not stop the run")
	}
	if s.Viewport() != (bounce.Viewport{Width: 50, Height: 20}) {
		t.Errorf("Viewport = %v, want {50 20}", s.Viewport())
	}
}
