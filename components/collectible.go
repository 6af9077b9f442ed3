package components

import (
	"github.com/yohamta/donburi"
)

// CollectibleData drives the carrot wobble around its spawn point.
type CollectibleData struct {
	BaseX  float64
	BaseY  float64
	PhaseX float64
	PhaseY float64
	Index  int // Spawn order within the zone
}

var Collectible = donburi.NewComponentType[CollectibleData]()

type DecorationData struct {
	Index int
}

var Decoration = donburi.NewComponentType[DecorationData]()
