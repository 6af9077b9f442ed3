package systems

import (
	"github.com/automoto/burrow/components"
	"github.com/automoto/burrow/tags"
	"github.com/yohamta/donburi"
)

// UpdateCollisions resolves the player against the active zone's tile grid.
func UpdateCollisions(w donburi.World, c *Collider) {
	zone := ZoneOf(w)
	if zone == nil || zone.Zone == nil {
		return
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		c.CollideObject(zone.Zone, components.Body.Get(e), components.Motion.Get(e))
	})
}
