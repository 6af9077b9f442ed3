package systems

import (
	"github.com/automoto/burrow/components"
	"github.com/automoto/burrow/tags"
	"github.com/yohamta/donburi"
)

func doorIndex(e *donburi.Entry) int { return components.Door.Get(e).Index }

// UpdateDoors records the door whose bounds contain the player's center as
// the zone's pending door. Doors are checked newest first, so the oldest
// matching door wins. A pending door stays set until the next zone setup.
func UpdateDoors(w donburi.World) {
	zone := ZoneOf(w)
	player, ok := PlayerOf(w)
	if zone == nil || !ok {
		return
	}
	playerBody := *components.Body.Get(player)
	candidates, hasSpace := broadPhase(player, tags.ResolvDoor)

	entries := indexedEntries(w, tags.Door, doorIndex)
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if hasSpace && !candidates[e.Entity()] {
			continue
		}
		if components.Body.Get(e).ContainsCenterOf(playerBody) {
			door := *components.Door.Get(e)
			zone.PendingDoor = &door
		}
	}
}
