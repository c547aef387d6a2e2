package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/bounce"
)

// Sprite is the drawable for the bouncing body: a texture drawn at a uniform
// scale and multiplied by Tint.
type Sprite struct {
	Image  *ebiten.Image
	ScaleX float64
	ScaleY float64
	Tint   Color
}

// NewSprite creates a sprite for img drawn at the given scale.
func NewSprite(img *ebiten.Image, scale float64) *Sprite {
	return &Sprite{
		Image:  img,
		ScaleX: scale,
		ScaleY: scale,
		Tint:   ColorWhite,
	}
}

// Size returns the rendered extent in device pixels: texture size times
// scale. This is the value the body's bounding box is built from.
func (s *Sprite) Size() bounce.Vec2 {
	if s.Image == nil {
		return bounce.Vec2{}
	}
	b := s.Image.Bounds()
	return bounce.Vec2{
		X: float64(b.Dx()) * s.ScaleX,
		Y: float64(b.Dy()) * s.ScaleY,
	}
}

// ScreenOrigin converts a body's center position (origin at the viewport
// center, Y up) into the top-left corner of its box in screen space (origin
// at the top-left, Y down).
func ScreenOrigin(b bounce.Body, vp bounce.Viewport) (x, y float64) {
	x = b.Position.X + vp.Width/2 - b.Size.X/2
	y = vp.Height/2 - b.Position.Y - b.Size.Y/2
	return x, y
}

// Draw renders the sprite at the body's position.
func (s *Sprite) Draw(dst *ebiten.Image, b bounce.Body, vp bounce.Viewport) {
	if s.Image == nil {
		return
	}
	x, y := ScreenOrigin(b, vp)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(s.ScaleX, s.ScaleY)
	op.GeoM.Translate(x, y)
	op.ColorScale = s.Tint.colorScale()
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.Image, &op)
}
