package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens the window described by the game's config and runs the game
// loop until the window is closed or Esc is pressed.
func Run(g *Game) error {
	cfg := g.Config()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	return ebiten.RunGame(g)
}
