package systems

import (
	"github.com/automoto/burrow/components"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/zonedata"
)

// Collision codes are bitmasks of the tile edges that block movement.
const (
	EdgeTop    = 1
	EdgeRight  = 2
	EdgeBottom = 4
	EdgeLeft   = 8
)

type edge int

const (
	top edge = iota
	right
	bottom
	left
)

// edgeOrder lists, per collision code, the edges tried in order. Resolution
// stops at the first edge that applies.
var edgeOrder = [16][]edge{
	0:  nil,
	1:  {top},
	2:  {right},
	3:  {top, right},
	4:  {bottom},
	5:  {top, bottom},
	6:  {right, bottom},
	7:  {top, right, bottom},
	8:  {left},
	9:  {top, left},
	10: {left, right},
	11: {top, left, right},
	12: {bottom, left},
	13: {top, bottom, left},
	14: {bottom, left, right},
	15: {top, bottom, left, right},
}

// Collider resolves a moving body against single tiles of a collision grid.
// Every test is directional: a body only collides with an edge it crossed
// since its previous position. Side and ceiling snaps leave Epsilon of space
// outside the tile; landings sit exactly on the tile top.
type Collider struct {
	TileSize float64
	Epsilon  float64
}

func NewCollider(tileSize int, epsilon float64) *Collider {
	return &Collider{TileSize: float64(tileSize), Epsilon: epsilon}
}

// Collide resolves body against the tile with the given code whose top left
// corner is (tileX, tileY). It reports whether an edge was resolved.
func (c *Collider) Collide(code int, body *gamemath.Rect, motion *components.MotionData, tileX, tileY float64) bool {
	if code <= 0 || code >= len(edgeOrder) {
		return false
	}
	for _, e := range edgeOrder[code] {
		var resolved bool
		switch e {
		case top:
			resolved = c.collideTop(body, motion, tileY)
		case right:
			resolved = c.collideRight(body, motion, tileX+c.TileSize)
		case bottom:
			resolved = c.collideBottom(body, motion, tileY+c.TileSize)
		case left:
			resolved = c.collideLeft(body, motion, tileX)
		}
		if resolved {
			return true
		}
	}
	return false
}

func (c *Collider) collideTop(body *gamemath.Rect, motion *components.MotionData, tileTop float64) bool {
	if body.Bottom() > tileTop && motion.OldY+body.H <= tileTop {
		body.SetBottom(tileTop)
		motion.VelocityY = 0
		motion.Jumping = false
		return true
	}
	return false
}

func (c *Collider) collideBottom(body *gamemath.Rect, motion *components.MotionData, tileBottom float64) bool {
	if body.Top() < tileBottom && motion.OldY >= tileBottom {
		body.SetTop(tileBottom + c.Epsilon)
		motion.VelocityY = 0
		return true
	}
	return false
}

func (c *Collider) collideLeft(body *gamemath.Rect, motion *components.MotionData, tileLeft float64) bool {
	if body.Right() > tileLeft && motion.OldX+body.W <= tileLeft {
		body.SetRight(tileLeft - c.Epsilon)
		motion.VelocityX = 0
		return true
	}
	return false
}

func (c *Collider) collideRight(body *gamemath.Rect, motion *components.MotionData, tileRight float64) bool {
	if body.Left() < tileRight && motion.OldX >= tileRight {
		body.SetLeft(tileRight + c.Epsilon)
		motion.VelocityX = 0
		return true
	}
	return false
}

// CodeAt returns the collision code at (col, row), or 0 outside the grid.
func CodeAt(z *zonedata.Zone, col, row int) int {
	if z == nil || col < 0 || row < 0 || col >= z.Columns || row >= z.Rows {
		return 0
	}
	return z.CollisionMap[row*z.Columns+col]
}

// CollideObject samples the tiles under the body's four corners in the order
// top-left, top-right, bottom-left, bottom-right. Each corner is recomputed
// after the previous resolution moved the body.
func (c *Collider) CollideObject(z *zonedata.Zone, body *gamemath.Rect, motion *components.MotionData) {
	for i := 0; i < 4; i++ {
		p := Corners(*body)[i]
		col := gamemath.TileIndex(p[0], c.TileSize)
		row := gamemath.TileIndex(p[1], c.TileSize)
		c.Collide(CodeAt(z, col, row), body, motion, float64(col)*c.TileSize, float64(row)*c.TileSize)
	}
}

// Corners returns the four sample points used by CollideObject.
func Corners(body gamemath.Rect) [4][2]float64 {
	return [4][2]float64{
		{body.Left(), body.Top()},
		{body.Right(), body.Top()},
		{body.Left(), body.Bottom()},
		{body.Right(), body.Bottom()},
	}
}
