package scenes

import (
	"image/color"

	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/systems"
	"github.com/automoto/burrow/tags"
	"github.com/automoto/burrow/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawDebug outlines the solid edges of every collision tile, the broad
// phase objects, and the player's collision sample points.
func DrawDebug(w *world.World, screen *ebiten.Image) {
	if z := w.Zone(); z != nil {
		ts := float32(cfg.Physics.TileSize)
		for row := 0; row < z.Rows; row++ {
			for col := 0; col < z.Columns; col++ {
				code := systems.CodeAt(z, col, row)
				if code == 0 {
					continue
				}
				x, y := float32(col)*ts, float32(row)*ts
				c := cfg.Debug.OverlayColor
				if code&systems.EdgeTop != 0 {
					vector.FillRect(screen, x, y, ts, 1, c, false)
				}
				if code&systems.EdgeBottom != 0 {
					vector.FillRect(screen, x, y+ts-1, ts, 1, c, false)
				}
				if code&systems.EdgeLeft != 0 {
					vector.FillRect(screen, x, y, 1, ts, c, false)
				}
				if code&systems.EdgeRight != 0 {
					vector.FillRect(screen, x+ts-1, y, 1, ts, c, false)
				}
			}
		}
	}

	if space := systems.SpaceOf(w.ECS()); space != nil {
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvCollectible) {
				c = color.RGBA{255, 160, 0, 255} // Orange
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	for _, p := range systems.Corners(w.PlayerBody()) {
		vector.FillRect(screen, float32(p[0])-1, float32(p[1])-1, 2, 2, cfg.Debug.CornerColor, false)
	}
}
