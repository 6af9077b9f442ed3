package components

import (
	"github.com/automoto/burrow/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Current *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
