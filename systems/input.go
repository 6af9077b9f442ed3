package systems

import (
	"github.com/automoto/burrow/components"
	cfg "github.com/automoto/burrow/config"
	"github.com/yohamta/donburi"
)

// Intents are the player's requested actions for one step. Left and Right
// are level triggered; Jump is an edge that the caller clears once applied.
type Intents struct {
	Left  bool
	Right bool
	Jump  bool
}

// Merge combines intents gathered over several frames. Held directions take
// the latest value, a jump press is kept until consumed.
func (i Intents) Merge(next Intents) Intents {
	return Intents{Left: next.Left, Right: next.Right, Jump: i.Jump || next.Jump}
}

// ApplyIntents turns intents into player velocity and facing.
func ApplyIntents(w donburi.World, in Intents) {
	components.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		motion := components.Motion.Get(e)

		if in.Left {
			player.Direction = cfg.DirectionLeft
			motion.VelocityX -= cfg.Player.Acceleration
		}
		if in.Right {
			player.Direction = cfg.DirectionRight
			motion.VelocityX += cfg.Player.Acceleration
		}
		if in.Jump {
			Jump(motion)
		}
	})
}

// Jump launches a grounded body that is not already falling fast.
func Jump(motion *components.MotionData) bool {
	if motion.Jumping || motion.VelocityY >= cfg.Player.JumpMaxFallVy {
		return false
	}
	motion.Jumping = true
	motion.VelocityY -= cfg.Player.JumpImpulse
	return true
}
