package bounce

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestStepScenario(t *testing.T) {
	b := Body{Velocity: Vec2{100, 100}, Size: Vec2{100, 50}}

	b, c := StepContacts(b, screen, 1.0)
	if c != ContactNone {
		t.Fatalf("first tick contact = %v, want none", c)
	}
	if b.Position != (Vec2{100, 100}) {
		t.Fatalf("Position = %v, want {100 100}", b.Position)
	}
	if again := Reflect(b, screen); again != b {
		t.Fatalf("interior body changed by Reflect: %+v", again)
	}

	// x would reach 400, past the (720-100)/2 = 310 limit.
	b, c = StepContacts(b, screen, 3.0)
	if !c.Has(ContactRight) {
		t.Fatalf("contact = %v, want right", c)
	}
	if b.Velocity.X != -100 {
		t.Errorf("Velocity.X = %v, want -100", b.Velocity.X)
	}
	if b.Position.X != 310 {
		t.Errorf("Position.X = %v, want exactly 310", b.Position.X)
	}
	// y reached 400 as well, past (480-50)/2 = 215.
	if !c.Has(ContactTop) || b.Velocity.Y != -100 || b.Position.Y != 215 {
		t.Errorf("y axis: contact %v, pos %v, vel %v", c, b.Position.Y, b.Velocity.Y)
	}
}

func TestStepMatchesAdvanceThenReflect(t *testing.T) {
	b := Body{Position: Vec2{300, 0}, Velocity: Vec2{50, -20}, Size: Vec2{100, 50}}
	want := Reflect(Advance(b, 0.5), screen)
	if got := Step(b, screen, 0.5); got != want {
		t.Errorf("Step = %+v, want %+v", got, want)
	}
	got, c := StepContacts(b, screen, 0.5)
	if got != want {
		t.Errorf("StepContacts body = %+v, want %+v", got, want)
	}
	if c != ContactRight {
		t.Errorf("StepContacts contact = %v, want right", c)
	}
}

func TestStepContainment(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for run := 0; run < 50; run++ {
		size := Vec2{1 + rng.Float64()*300, 1 + rng.Float64()*200}
		angle := rng.Float64() * 2 * math.Pi
		b := Init(screen, rng.Float64()*2000, angle)
		b.Size = size
		speed := b.Speed()

		for tick := 0; tick < 400; tick++ {
			b = Step(b, screen, rng.Float64()*0.05)
			e := b.Edges(screen)
			if e.Left < -epsilon || e.Right > screen.Width+epsilon ||
				e.Bottom < -epsilon || e.Top > screen.Height+epsilon {
				t.Fatalf("run %d tick %d: body escaped viewport: %+v", run, tick, e)
			}
			if math.Abs(b.Speed()-speed) > 1e-6 {
				t.Fatalf("run %d tick %d: speed %v, want %v", run, tick, b.Speed(), speed)
			}
		}
	}
}

func TestStepCornerFlipsBothAxes(t *testing.T) {
	b := Body{Position: Vec2{305, 210}, Velocity: Vec2{100, 100}, Size: Vec2{100, 50}}
	got, c := StepContacts(b, screen, 0.1)
	if !c.Corner() {
		t.Fatalf("contact = %v, want a corner", c)
	}
	if got.Velocity != (Vec2{-100, -100}) {
		t.Errorf("Velocity = %v, want {-100 -100}", got.Velocity)
	}
	if got.Position != (Vec2{310, 215}) {
		t.Errorf("Position = %v, want {310 215}", got.Position)
	}
}

func TestStepBouncesBackAndForth(t *testing.T) {
	// Horizontal motion only: count wall hits over a long run.
	b := Init(screen, 620, 0)
	b.Size = Vec2{100, 50}
	var hits int
	for i := 0; i < 100; i++ {
		var c Contact
		b, c = StepContacts(b, screen, 0.1)
		if c.Horizontal() {
			hits++
		}
		if c.Vertical() {
			t.Fatalf("tick %d: unexpected vertical contact %v", i, c)
		}
	}
	// 620 px/s across a 620 px track is one wall per second.
	if hits < 9 || hits > 11 {
		t.Errorf("hits = %d, want about 10", hits)
	}
}

func TestStepLargeDtDropsOvershoot(t *testing.T) {
	// No swept collision: a huge tick lands far past the wall and the clamp
	// puts the body flush against it, not reflected back by the overshoot.
	b := Body{Position: Vec2{300, 0}, Velocity: Vec2{100, 0}, Size: Vec2{100, 50}}
	got, c := StepContacts(b, screen, 10)
	if c != ContactRight {
		t.Fatalf("contact = %v, want right", c)
	}
	if got.Position.X != 310 || got.Velocity.X != -100 {
		t.Errorf("body = %+v, want flush at 310 moving left", got)
	}
}
