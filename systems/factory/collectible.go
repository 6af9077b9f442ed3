package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/burrow/archetypes"
	"github.com/automoto/burrow/assets/animations"
	"github.com/automoto/burrow/components"
	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateCollectible spawns a carrot for the grid cell (col, row). rng picks
// the wobble phase and the starting frame.
func CreateCollectible(w donburi.World, space *resolv.Space, col, row, index int, rng *rand.Rand) *donburi.Entry {
	e := archetypes.Collectible.Spawn(w)

	ts := float64(cfg.Physics.TileSize)
	x := float64(col)*ts + cfg.Collectible.OffsetX
	y := float64(row)*ts + cfg.Collectible.OffsetY
	width, height := cfg.Collectible.Width, cfg.Collectible.Height

	phase := rng.Float64() * 2 * math.Pi
	components.Collectible.SetValue(e, components.CollectibleData{
		BaseX:  x,
		BaseY:  y,
		PhaseX: phase,
		PhaseY: phase * 2,
		Index:  index,
	})
	components.Body.SetValue(e, gamemath.NewRect(x, y, width, height))
	newObject(space, e, x, y, width, height, tags.ResolvCollectible)

	set := FrameSet(cfg.FramesCarrot)
	anim := animations.NewAnimation(set, cfg.Collectible.AnimationDelay, animations.ModeLoop)
	anim.SetIndex(rng.IntN(len(set.Frames)))
	components.Animation.SetValue(e, components.AnimationData{Current: anim})

	return e
}

// CreateDecoration spawns grass for the grid cell (col, row).
func CreateDecoration(w donburi.World, col, row, index int) *donburi.Entry {
	e := archetypes.Decoration.Spawn(w)

	ts := float64(cfg.Physics.TileSize)
	components.Decoration.SetValue(e, components.DecorationData{Index: index})
	components.Body.SetValue(e, gamemath.NewRect(float64(col)*ts, float64(row)*ts+cfg.Decoration.OffsetY, 0, 0))
	components.Animation.SetValue(e, components.AnimationData{
		Current: animations.NewAnimation(FrameSet(cfg.FramesGrass), cfg.Decoration.AnimationDelay, animations.ModeLoop),
	})

	return e
}
