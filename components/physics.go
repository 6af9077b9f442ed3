package components

import (
	"github.com/yohamta/donburi"
)

// MotionData is the moving state of a body. OldX/OldY hold the body position
// at the start of the current physics step.
type MotionData struct {
	OldX        float64
	OldY        float64
	VelocityX   float64
	VelocityY   float64
	MaxVelocity float64
	Jumping     bool // Airborne; cleared only by landing on a tile top
}

var Motion = donburi.NewComponentType[MotionData]()
