package factory

import (
	"math"

	"github.com/automoto/burrow/archetypes"
	"github.com/automoto/burrow/components"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/zonedata"
	"github.com/automoto/burrow/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateDoor(w donburi.World, space *resolv.Space, spec zonedata.DoorSpec, index int) *donburi.Entry {
	e := archetypes.Door.Spawn(w)

	components.Door.SetValue(e, components.DoorData{
		DestinationZone: spec.DestinationZone,
		DestinationX:    spec.DestinationX,
		DestinationY:    spec.DestinationY,
		Index:           index,
	})
	components.Body.SetValue(e, gamemath.NewRect(spec.X, spec.Y, spec.Width, spec.Height))
	// Space cells ignore objects without area.
	newObject(space, e, spec.X, spec.Y, math.Max(spec.Width, 1), math.Max(spec.Height, 1), tags.ResolvDoor)

	return e
}
