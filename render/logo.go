package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	logoText  = "DVD"
	logoW     = 200
	logoH     = 120
	logoScale = 7
)

// NewLogo loads the logo texture from a PNG/JPEG/GIF file. An empty path
// returns the built-in logo from GenerateLogo.
func NewLogo(path string) (*ebiten.Image, error) {
	if path == "" {
		return GenerateLogo(), nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load logo %s: %w", path, err)
	}
	return img, nil
}

// GenerateLogo renders a white "DVD" wordmark with an underline bar, sized
// 200x120. It is drawn in white so the sprite tint fully controls its color.
func GenerateLogo() *ebiten.Image {
	face := text.NewGoXFace(basicfont.Face7x13)
	tw, th := text.Measure(logoText, face, 0)

	// Draw at native size, then blow it up with nearest filtering to keep
	// the bitmap font crisp.
	small := ebiten.NewImage(int(tw)+1, int(th)+1)
	text.Draw(small, logoText, face, &text.DrawOptions{})

	img := ebiten.NewImage(logoW, logoH)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(logoScale, logoScale)
	op.GeoM.Translate((logoW-tw*logoScale)/2, 4)
	op.Filter = ebiten.FilterNearest
	img.DrawImage(small, &op)

	bar := ebiten.NewImage(logoW-40, 12)
	bar.Fill(color.White)
	var bop ebiten.DrawImageOptions
	bop.GeoM.Translate(20, logoH-22)
	img.DrawImage(bar, &bop)
	return img
}
