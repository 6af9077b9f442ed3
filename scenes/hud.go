package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudMargin  = 4
	hudPadding = 2
)

var hudTextOp = &text.DrawOptions{}

// DrawHUD renders the carrot counter in the top-left corner.
func DrawHUD(collected int, screen *ebiten.Image) {
	label := fmt.Sprintf("Carrots: %d", collected)
	face := fonts.HUD.Get()
	w, h := text.Measure(label, face, 0)

	// Background (translucent black)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(w+2*hudPadding), float32(h+2*hudPadding),
		color.RGBA{0, 0, 0, 120}, false)

	hudTextOp.GeoM.Reset()
	hudTextOp.GeoM.Translate(hudMargin+hudPadding, hudMargin+hudPadding)
	hudTextOp.ColorScale.Reset()
	hudTextOp.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, label, face, hudTextOp)
}

// DrawFade covers the screen with the transition color at opacity alpha.
func DrawFade(alpha float32, screen *ebiten.Image) {
	if alpha <= 0 {
		return
	}
	c := cfg.Transition.FadeColor
	c.A = uint8(float32(c.A) * alpha)
	c.R = uint8(float32(c.R) * alpha)
	c.G = uint8(float32(c.G) * alpha)
	c.B = uint8(float32(c.B) * alpha)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
