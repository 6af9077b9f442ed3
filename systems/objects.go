package systems

import (
	"github.com/automoto/burrow/components"
	"github.com/automoto/burrow/systems/factory"
	"github.com/automoto/burrow/tags"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves every broad phase object onto its body. The player's
// object covers factory.PlayerReach of its body.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		obj := components.Object.Get(e)
		body := components.Body.Get(e)

		x, y := body.X, body.Y
		if e.HasComponent(tags.Player) {
			reach := factory.PlayerReach(*body)
			x, y = reach.X, reach.Y
		}
		if obj.X == x && obj.Y == y {
			continue
		}
		obj.X, obj.Y = x, y
		obj.Update()
	}
}
