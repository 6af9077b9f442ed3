package systems

import (
	"math"

	"github.com/automoto/burrow/assets/animations"
	"github.com/automoto/burrow/components"
	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/systems/factory"
	"github.com/yohamta/donburi"
)

// pauseDelay is the delay given to single frame sets, which never advance.
const pauseDelay = 10

// UpdatePlayerAnimation picks the player's frame set from its motion and
// advances it.
func UpdatePlayerAnimation(w donburi.World) {
	components.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		motion := components.Motion.Get(e)
		anim := components.Animation.Get(e).Current

		facingLeft := player.Direction < 0
		switch {
		case motion.VelocityY < 0:
			anim.ChangeFrameSet(factory.FrameSet(pick(facingLeft, cfg.FramesJumpLeft, cfg.FramesJumpRight)), animations.ModePause, pauseDelay, 0)
		case isWalking(player.Direction, motion.VelocityX):
			anim.ChangeFrameSet(factory.FrameSet(pick(facingLeft, cfg.FramesMoveLeft, cfg.FramesMoveRight)), animations.ModeLoop, cfg.Player.WalkAnimationDelay, 0)
		default:
			anim.ChangeFrameSet(factory.FrameSet(pick(facingLeft, cfg.FramesIdleLeft, cfg.FramesIdleRight)), animations.ModePause, pauseDelay, 0)
		}

		animations.Animate(anim)
	})
}

// isWalking reports whether the body moves faster than the walk threshold in
// the direction it faces.
func isWalking(direction, vx float64) bool {
	if math.Abs(vx) <= cfg.Player.MoveThreshold {
		return false
	}
	return (direction < 0) == (vx < 0)
}

func pick(left bool, l, r string) string {
	if left {
		return l
	}
	return r
}
