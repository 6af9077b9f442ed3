package factory

import (
	"github.com/automoto/burrow/archetypes"
	"github.com/automoto/burrow/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// newObject creates a broad phase proxy for e and adds it to space.
func newObject(space *resolv.Space, e *donburi.Entry, x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if space != nil {
		space.Add(obj)
	}
	return obj
}
