package components

import (
	"github.com/yohamta/donburi"
)

// DoorData is a zone exit. A destination coordinate of -1 keeps the player's
// current value on that axis.
type DoorData struct {
	DestinationZone string
	DestinationX    float64
	DestinationY    float64
	Index           int
}

var Door = donburi.NewComponentType[DoorData]()
