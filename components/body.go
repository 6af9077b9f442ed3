package components

import (
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Body is the entity's exact axis-aligned rectangle in world pixels.
var Body = donburi.NewComponentType[gamemath.Rect]()
