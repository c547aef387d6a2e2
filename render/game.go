package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/bounce"
	"github.com/tanema/gween/ease"
)

// tintDuration is how long the logo takes to fade to its next color.
const tintDuration = 0.25

// Options holds host settings that are not part of the simulation config.
type Options struct {
	ShowFPS       bool
	Debug         bool
	ScreenshotDir string
	Palette       []Color
	ClearColor    Color
}

// Game runs the bounce simulation inside an ebiten window. It owns the single
// body and steps it once per Update.
type Game struct {
	cfg    bounce.Config
	vp     bounce.Viewport
	body   bounce.Body
	sprite *Sprite

	palette    []Color
	paletteIdx int
	tween      *ColorTween
	sink       bounce.EventSink

	tick     uint64
	paused   bool
	stepOnce bool

	fps    *fpsOverlay
	debug  bool
	stats  debugStats
	logOut io.Writer

	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir   string
	screenshotQueue []string

	// ClearColor fills the screen before the logo is drawn.
	ClearColor Color
}

// NewGame creates a game for the given config and logo texture. The body
// starts at the viewport center with its size taken from the logo at
// cfg.Scale.
func NewGame(cfg bounce.Config, logo *ebiten.Image, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logo == nil {
		return nil, errors.New("new game: no logo image")
	}

	g := &Game{
		cfg:           cfg,
		vp:            cfg.Viewport(),
		body:          cfg.NewBody(),
		sprite:        NewSprite(logo, cfg.Scale),
		palette:       opts.Palette,
		debug:         opts.Debug,
		logOut:        os.Stderr,
		ScreenshotDir: opts.ScreenshotDir,
		ClearColor:    opts.ClearColor,
	}
	if len(g.palette) == 0 {
		g.palette = DefaultPalette
	}
	if g.ScreenshotDir == "" {
		g.ScreenshotDir = "screenshots"
	}
	g.sprite.Tint = g.palette[0]
	g.body.Size = g.sprite.Size()
	if opts.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g, nil
}

// Body returns the current simulation state.
func (g *Game) Body() bounce.Body {
	return g.body
}

// Viewport returns the fixed viewport the body bounces in.
func (g *Game) Viewport() bounce.Viewport {
	return g.vp
}

// Config returns the config the game was created with.
func (g *Game) Config() bounce.Config {
	return g.cfg
}

// Tint returns the logo's current tint.
func (g *Game) Tint() Color {
	return g.sprite.Tint
}

// Ticks returns the number of simulation ticks run so far.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// SetEventSink sets the receiver for contact events. Pass nil to disable.
func (g *Game) SetEventSink(sink bounce.EventSink) {
	g.sink = sink
}

// SetDebugMode enables or disables per-second stats on stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
	g.stats.reset()
}

// SetPaused stops or resumes the simulation. Rendering continues while
// paused.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Tick advances the simulation by dt seconds: the body is stepped, and any
// wall contact starts a tint change and is forwarded to the event sink.
func (g *Game) Tick(dt float64) bounce.Contact {
	var c bounce.Contact
	g.body, c = bounce.StepContacts(g.body, g.vp, dt)
	g.tick++

	if c != bounce.ContactNone {
		g.onContact(c)
	}
	g.tween.Update(float32(dt))

	if g.debug && g.stats.record(dt, c) {
		g.debugLog()
		g.stats.reset()
	}
	return c
}

// onContact moves the tint to the next palette color and emits the event.
func (g *Game) onContact(c bounce.Contact) {
	g.paletteIdx = (g.paletteIdx + 1) % len(g.palette)
	g.tween = TweenColor(&g.sprite.Tint, g.palette[g.paletteIdx], tintDuration, ease.OutQuad)

	if g.debug && c.Corner() {
		g.logf("corner hit at tick %d: %v", g.tick, c)
	}
	if g.sink != nil {
		g.sink.EmitContact(bounce.ContactEvent{
			Tick:     g.tick,
			Contact:  c,
			Position: g.body.Position,
			Velocity: g.body.Velocity,
		})
	}
}

// Update implements ebiten.Game. The simulation advances by one fixed tick
// of 1/TPS seconds unless paused.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	dt := 1.0 / float64(ebiten.TPS())
	if g.fps != nil {
		g.fps.update(dt)
	}
	if g.paused && !g.stepOnce {
		return nil
	}
	g.stepOnce = false
	g.Tick(dt)
	return nil
}

// handleInput processes keyboard shortcuts:
// P pause, N single step while paused, S screenshot, D debug, Esc quit.
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.paused {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Screenshot(fmt.Sprintf("tick-%d", g.tick))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.SetDebugMode(!g.debug)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ClearColor.RGBA())
	g.sprite.Draw(screen, g.body, g.vp)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen is always the configured
// viewport, regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
