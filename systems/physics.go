package systems

import (
	"github.com/automoto/burrow/components"
	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates every moving body by one step. The previous
// position is snapshotted first so the collider can tell which tile edges
// were crossed.
func UpdatePhysics(w donburi.World) {
	components.Motion.Each(w, func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		body := components.Body.Get(e)

		motion.OldX = body.X
		motion.OldY = body.Y

		motion.VelocityY += cfg.Physics.Gravity
		motion.VelocityX = gamemath.ApplyFriction(motion.VelocityX, cfg.Physics.Friction)

		motion.VelocityX = gamemath.ClampSpeed(motion.VelocityX, motion.MaxVelocity)
		motion.VelocityY = gamemath.ClampSpeed(motion.VelocityY, motion.MaxVelocity)

		body.X += motion.VelocityX
		body.Y += motion.VelocityY
	})
}
