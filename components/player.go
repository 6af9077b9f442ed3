package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction float64 // -1 facing left, 1 facing right
}

var Player = donburi.NewComponentType[PlayerData]()
