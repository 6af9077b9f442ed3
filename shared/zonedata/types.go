// Package zonedata describes zones and decodes them from JSON or Tiled TMX
// files. It has no dependencies on ebitengine, donburi or resolv.
package zonedata

import (
	"errors"
	"fmt"
)

// ErrInvalidZone is wrapped by every validation failure.
var ErrInvalidZone = errors.New("invalid zone")

// KeepAxis as a door destination keeps the player's current position on that
// axis.
const KeepAxis = -1

// Zone is a static level descriptor. CollisionMap and GraphicalMap are row
// major with Columns*Rows entries each.
type Zone struct {
	ID           string     `json:"id"`
	Columns      int        `json:"columns"`
	Rows         int        `json:"rows"`
	CollisionMap []int      `json:"collision_map"`
	GraphicalMap []int      `json:"graphical_map"`
	Collectibles []GridCell `json:"carrots"`
	Decorations  []GridCell `json:"grass"`
	Doors        []DoorSpec `json:"doors"`
}

// GridCell is a (column, row) pair, stored as a two element JSON array.
type GridCell [2]int

func (c GridCell) Column() int { return c[0] }
func (c GridCell) Row() int    { return c[1] }

// DoorSpec places a door in world pixels. DestinationX and DestinationY are the
// player's new center in the destination zone, or KeepAxis.
type DoorSpec struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	DestinationX    float64 `json:"destination_x"`
	DestinationY    float64 `json:"destination_y"`
	DestinationZone string  `json:"destination_zone"`
}

// MaxCollisionCode is the fully solid tile code.
const MaxCollisionCode = 15

// Validate checks the zone's shape so the simulation never indexes outside
// its maps.
func (z *Zone) Validate() error {
	if z == nil {
		return fmt.Errorf("%w: nil zone", ErrInvalidZone)
	}
	if z.Columns <= 0 || z.Rows <= 0 {
		return fmt.Errorf("%w %q: grid is %dx%d", ErrInvalidZone, z.ID, z.Columns, z.Rows)
	}
	cells := z.Columns * z.Rows
	if z.CollisionMap == nil {
		return fmt.Errorf("%w %q: missing collision map", ErrInvalidZone, z.ID)
	}
	if len(z.CollisionMap) != cells {
		return fmt.Errorf("%w %q: collision map has %d entries, expected %d", ErrInvalidZone, z.ID, len(z.CollisionMap), cells)
	}
	if z.GraphicalMap == nil {
		return fmt.Errorf("%w %q: missing graphical map", ErrInvalidZone, z.ID)
	}
	if len(z.GraphicalMap) != cells {
		return fmt.Errorf("%w %q: graphical map has %d entries, expected %d", ErrInvalidZone, z.ID, len(z.GraphicalMap), cells)
	}
	for i, code := range z.CollisionMap {
		if code < 0 || code > MaxCollisionCode {
			return fmt.Errorf("%w %q: collision code %d at cell %d", ErrInvalidZone, z.ID, code, i)
		}
	}
	for i, tile := range z.GraphicalMap {
		if tile < 0 {
			return fmt.Errorf("%w %q: graphical tile %d at cell %d", ErrInvalidZone, z.ID, tile, i)
		}
	}
	for i, d := range z.Doors {
		if d.Width < 0 || d.Height < 0 {
			return fmt.Errorf("%w %q: door %d has negative size", ErrInvalidZone, z.ID, i)
		}
		if d.DestinationZone == "" {
			return fmt.Errorf("%w %q: door %d has no destination zone", ErrInvalidZone, z.ID, i)
		}
	}
	return nil
}

// Width and Height return the zone size in pixels.
func (z *Zone) Width(tileSize int) int  { return z.Columns * tileSize }
func (z *Zone) Height(tileSize int) int { return z.Rows * tileSize }
