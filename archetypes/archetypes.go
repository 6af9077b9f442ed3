package archetypes

import (
	"github.com/automoto/burrow/components"
	"github.com/automoto/burrow/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Motion,
		components.Object,
		components.Animation,
	)
	Collectible = newArchetype(
		tags.Collectible,
		tags.ZoneScoped,
		components.Collectible,
		components.Body,
		components.Object,
		components.Animation,
	)
	Decoration = newArchetype(
		tags.Decoration,
		tags.ZoneScoped,
		components.Decoration,
		components.Body,
		components.Animation,
	)
	Door = newArchetype(
		tags.Door,
		tags.ZoneScoped,
		components.Door,
		components.Body,
		components.Object,
	)
	Space = newArchetype(
		tags.ZoneScoped,
		components.Space,
	)
	Zone = newArchetype(
		components.Zone,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
