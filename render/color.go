package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// DefaultPalette is the tint cycle used for the logo. Each wall contact moves
// to the next entry.
var DefaultPalette = []Color{
	{R: 1, G: 1, B: 1, A: 1},
	{R: 0.95, G: 0.26, B: 0.21, A: 1},
	{R: 1, G: 0.76, B: 0.03, A: 1},
	{R: 0.3, G: 0.69, B: 0.31, A: 1},
	{R: 0.13, G: 0.59, B: 0.95, A: 1},
	{R: 0.61, G: 0.15, B: 0.69, A: 1},
	{R: 1, G: 0.34, B: 0.13, A: 1},
}

// RGBA returns the premultiplied 8-bit color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorScale returns c as a premultiplied ebiten.ColorScale for tinting.
func (c Color) colorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := clamp01(c.A)
	cs.Scale(
		float32(clamp01(c.R)*a),
		float32(clamp01(c.G)*a),
		float32(clamp01(c.B)*a),
		float32(a),
	)
	return cs
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
