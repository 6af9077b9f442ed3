package scenes

import (
	"image"
	"math"

	"github.com/automoto/burrow/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// RasterBackend draws into an offscreen buffer. Present copies it to the
// front image, which is what the scene shows until the next Present.
type RasterBackend struct {
	sheet *ebiten.Image
	back  *ebiten.Image
	front *ebiten.Image
	op    ebiten.DrawImageOptions
}

func NewRasterBackend(sheet *ebiten.Image, width, height int) *RasterBackend {
	return &RasterBackend{
		sheet: sheet,
		back:  ebiten.NewImage(width, height),
		front: ebiten.NewImage(width, height),
	}
}

func (b *RasterBackend) DrawTile(src image.Rectangle, dstCol, dstRow, tileSize int) {
	b.blit(src, float64(dstCol*tileSize), float64(dstRow*tileSize))
}

// DrawSprite draws src at the top left of dst, snapped to whole pixels.
func (b *RasterBackend) DrawSprite(src image.Rectangle, dst gamemath.Rect) {
	b.blit(src, math.Floor(dst.X), math.Floor(dst.Y))
}

func (b *RasterBackend) Present() {
	b.front.Clear()
	b.front.DrawImage(b.back, nil)
	b.back.Clear()
}

// Frame returns the last presented frame.
func (b *RasterBackend) Frame() *ebiten.Image {
	return b.front
}

func (b *RasterBackend) blit(src image.Rectangle, x, y float64) {
	b.op.GeoM.Reset()
	b.op.GeoM.Translate(x, y)
	b.back.DrawImage(b.sheet.SubImage(src).(*ebiten.Image), &b.op)
}
