package render

import (
	"fmt"
	"io"

	"github.com/phanxgames/bounce"
)

// debugStats accumulates per-second simulation counters.
// Only populated when the game is in debug mode.
type debugStats struct {
	elapsed  float64
	ticks    int
	contacts int
	corners  int
}

// debugInterval is how often (simulated seconds) debug stats are printed.
const debugInterval = 1.0

// record adds one tick to the stats and reports whether a line is due.
func (s *debugStats) record(dt float64, c bounce.Contact) bool {
	s.elapsed += dt
	s.ticks++
	if c != bounce.ContactNone {
		s.contacts++
	}
	if c.Corner() {
		s.corners++
	}
	return s.elapsed >= debugInterval
}

func (s *debugStats) reset() {
	*s = debugStats{}
}

// debugLog prints the accumulated stats and the current body state.
func (g *Game) debugLog() {
	if !g.debug {
		return
	}
	b := g.body
	g.logf("tick %d | ticks: %d | contacts: %d | corners: %d",
		g.tick, g.stats.ticks, g.stats.contacts, g.stats.corners)
	g.logf("pos (%.1f, %.1f) | vel (%.1f, %.1f) | speed %.1f",
		b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y, b.Speed())
}

// logf writes one "[bounce]"-prefixed diagnostic line.
func (g *Game) logf(format string, args ...any) {
	writeLog(g.logOut, format, args...)
}

func writeLog(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "[bounce] "+format+"\n", args...)
}
