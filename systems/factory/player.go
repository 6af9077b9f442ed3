package factory

import (
	"github.com/automoto/burrow/archetypes"
	"github.com/automoto/burrow/assets/animations"
	"github.com/automoto/burrow/components"
	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/tags"
	"github.com/yohamta/donburi"
)

// PlayerReachMargin is how far the player's broad phase object extends past
// its body. Space cells only register objects that reach into them, so a body
// touching a neighbour along a cell border would otherwise miss it.
const PlayerReachMargin = 1.0

// PlayerReach returns the rectangle covered by the player's broad phase object.
func PlayerReach(body gamemath.Rect) gamemath.Rect {
	return body.Grow(PlayerReachMargin)
}

// CreatePlayer spawns the player with its top left corner at (x, y). The
// player's broad phase object is added to a space later, by zone setup.
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	body := gamemath.NewRect(x, y, cfg.Player.Width, cfg.Player.Height)
	components.Body.SetValue(player, body)
	components.Motion.SetValue(player, components.MotionData{
		OldX:        x,
		OldY:        y,
		MaxVelocity: cfg.Player.MaxVelocity,
		Jumping:     true,
	})
	components.Player.SetValue(player, components.PlayerData{
		Direction: cfg.Player.Direction,
	})
	reach := PlayerReach(body)
	newObject(nil, player, reach.X, reach.Y, reach.W, reach.H, tags.ResolvPlayer)

	components.Animation.SetValue(player, components.AnimationData{
		Current: animations.NewAnimation(FrameSet(cfg.FramesIdleLeft), cfg.Player.WalkAnimationDelay, animations.ModePause),
	})

	return player
}
