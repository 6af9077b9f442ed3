package zonedata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX zones.
const (
	CollisionLayer    = "collision"
	GraphicsLayer     = "graphics"
	CollectiblesGroup = "collectibles"
	DecorationsGroup  = "decorations"
	DoorsGroup        = "doors"
)

// LoadTMX parses a Tiled map into a Zone. The collision layer uses a 16 tile
// tileset whose local tile ids are the collision codes; empty cells are code
// 0. The graphics layer stores tile sheet indices the same way. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Zone, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	z := &Zone{
		ID:      zoneIDFromPath(tmxPath),
		Columns: levelMap.Width,
		Rows:    levelMap.Height,
	}
	if id := levelMap.Properties.GetString("id"); id != "" {
		z.ID = id
	}

	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case CollisionLayer:
			z.CollisionMap = layerIDs(layer, levelMap.Width*levelMap.Height)
		case GraphicsLayer:
			z.GraphicalMap = layerIDs(layer, levelMap.Width*levelMap.Height)
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case CollectiblesGroup:
			z.Collectibles = append(z.Collectibles, objectCells(og, tileW, tileH)...)
		case DecorationsGroup:
			z.Decorations = append(z.Decorations, objectCells(og, tileW, tileH)...)
		case DoorsGroup:
			doors := make([]DoorSpec, 0, len(og.Objects))
			for _, o := range og.Objects {
				doors = append(doors, DoorSpec{
					X:               o.X,
					Y:               o.Y,
					Width:           o.Width,
					Height:          o.Height,
					DestinationZone: o.Properties.GetString("destinationZone"),
					DestinationX:    o.Properties.GetFloat("destinationX"),
					DestinationY:    o.Properties.GetFloat("destinationY"),
				})
			}
			// Order doors top to bottom, then left to right.
			sort.SliceStable(doors, func(i, j int) bool {
				if doors[i].Y != doors[j].Y {
					return doors[i].Y < doors[j].Y
				}
				return doors[i].X < doors[j].X
			})
			z.Doors = append(z.Doors, doors...)
		}
	}

	if err := z.Validate(); err != nil {
		return nil, fmt.Errorf("zone %s: %w", tmxPath, err)
	}
	return z, nil
}

func layerIDs(layer *tiled.Layer, cells int) []int {
	ids := make([]int, cells)
	for i, tile := range layer.Tiles {
		if i >= cells {
			break
		}
		if tile == nil || tile.IsNil() {
			continue
		}
		ids[i] = int(tile.ID)
	}
	return ids
}

func objectCells(og *tiled.ObjectGroup, tileW, tileH float64) []GridCell {
	cells := make([]GridCell, 0, len(og.Objects))
	for _, o := range og.Objects {
		cells = append(cells, GridCell{
			int(math.Floor(o.X / tileW)),
			int(math.Floor(o.Y / tileH)),
		})
	}
	return cells
}

func zoneIDFromPath(p string) string {
	stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
	return strings.TrimPrefix(stem, "zone")
}
