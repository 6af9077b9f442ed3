package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's broad phase proxy in the zone space. Its Data
// field points back at the entity's *donburi.Entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the zone's resolv space.
var Space = donburi.NewComponentType[resolv.Space]()
