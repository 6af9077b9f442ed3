package components

import (
	"github.com/automoto/burrow/shared/zonedata"
	"github.com/yohamta/donburi"
)

// ZoneData is the singleton holding the active zone and the state that
// outlives it.
type ZoneData struct {
	Zone        *zonedata.Zone
	Collected   int       // Carrots taken across all zones
	PendingDoor *DoorData // Set by the door check, cleared by setup
}

var Zone = donburi.NewComponentType[ZoneData]()
