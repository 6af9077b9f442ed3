// Package render turns world state into raster backend calls.
package render

import (
	"image"

	"github.com/automoto/burrow/shared/gamemath"
)

// Backend draws regions of the tile sheet into an offscreen buffer and
// presents it.
type Backend interface {
	// DrawTile copies src into the grid cell (dstCol, dstRow).
	DrawTile(src image.Rectangle, dstCol, dstRow, tileSize int)
	// DrawSprite copies src into dst, in world pixels.
	DrawSprite(src image.Rectangle, dst gamemath.Rect)
	// Present makes the buffer visible.
	Present()
}

// Call is one recorded backend operation.
type Call struct {
	Op       string // "tile", "sprite" or "present"
	Src      image.Rectangle
	Col, Row int
	Dst      gamemath.Rect
}

// Recorder is a Backend that keeps every call in order.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) DrawTile(src image.Rectangle, dstCol, dstRow, tileSize int) {
	r.Calls = append(r.Calls, Call{
		Op:  "tile",
		Src: src,
		Col: dstCol,
		Row: dstRow,
		Dst: gamemath.NewRect(float64(dstCol*tileSize), float64(dstRow*tileSize), float64(tileSize), float64(tileSize)),
	})
}

func (r *Recorder) DrawSprite(src image.Rectangle, dst gamemath.Rect) {
	r.Calls = append(r.Calls, Call{Op: "sprite", Src: src, Dst: dst})
}

func (r *Recorder) Present() {
	r.Calls = append(r.Calls, Call{Op: "present"})
}

// Count returns how many recorded calls used op.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
