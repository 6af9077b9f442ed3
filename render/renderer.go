package render

import (
	"image"
	"math"
	"slices"

	"github.com/automoto/burrow/components"
	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/world"
	"github.com/yohamta/donburi"
)

// Renderer draws a world through an explicit backend: the map, then
// collectibles, the player and decorations, then presents.
type Renderer struct {
	backend Backend
	sheet   cfg.TileSet
}

func New(backend Backend, sheet cfg.TileSet) *Renderer {
	return &Renderer{backend: backend, sheet: sheet}
}

// Draw renders w and presents the frame.
func (r *Renderer) Draw(w *world.World) {
	if z := w.Zone(); z != nil {
		r.drawMap(z.GraphicalMap, z.Columns)
	}

	ecs := w.ECS()
	for _, e := range sortedBy(ecs, components.Collectible, func(e *donburi.Entry) int {
		return components.Collectible.Get(e).Index
	}) {
		r.drawCentered(e)
	}

	r.drawCentered(w.Player())

	for _, e := range sortedBy(ecs, components.Decoration, func(e *donburi.Entry) int {
		return components.Decoration.Get(e).Index
	}) {
		r.drawAnchored(e)
	}

	r.backend.Present()
}

// drawMap draws the graphical map from the last cell to the first.
func (r *Renderer) drawMap(tiles []int, columns int) {
	ts := r.sheet.TileSize
	for i := len(tiles) - 1; i >= 0; i-- {
		v := tiles[i]
		sx := (v % r.sheet.Columns) * ts
		sy := (v / r.sheet.Columns) * ts
		r.backend.DrawTile(image.Rect(sx, sy, sx+ts, sy+ts), i%columns, i/columns, ts)
	}
}

// drawCentered draws the entity's current frame centered horizontally on its
// body and offset by the frame's draw offset.
func (r *Renderer) drawCentered(e *donburi.Entry) {
	frame, ok := r.frameOf(e)
	if !ok {
		return
	}
	body := components.Body.Get(e)
	x := body.X + math.Floor(body.W*0.5-float64(frame.W)*0.5) + frame.OffsetX
	y := body.Y + frame.OffsetY
	r.backend.DrawSprite(frameRect(frame), gamemath.NewRect(x, y, float64(frame.W), float64(frame.H)))
}

// drawAnchored draws the entity's current frame at its body's top left.
func (r *Renderer) drawAnchored(e *donburi.Entry) {
	frame, ok := r.frameOf(e)
	if !ok {
		return
	}
	body := components.Body.Get(e)
	r.backend.DrawSprite(frameRect(frame), gamemath.NewRect(body.X+frame.OffsetX, body.Y+frame.OffsetY, float64(frame.W), float64(frame.H)))
}

func (r *Renderer) frameOf(e *donburi.Entry) (cfg.Frame, bool) {
	anim := components.Animation.Get(e).Current
	if anim == nil {
		return cfg.Frame{}, false
	}
	id := anim.Frame()
	if id < 0 || id >= len(r.sheet.Frames) {
		return cfg.Frame{}, false
	}
	return r.sheet.Frames[id], true
}

func frameRect(f cfg.Frame) image.Rectangle {
	return image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)
}

func sortedBy[T any](w donburi.World, c *donburi.ComponentType[T], index func(*donburi.Entry) int) []*donburi.Entry {
	var entries []*donburi.Entry
	c.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		return index(a) - index(b)
	})
	return entries
}
