package systems

import (
	"math"

	"github.com/automoto/burrow/assets/animations"
	"github.com/automoto/burrow/components"
	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/logger"
	"github.com/automoto/burrow/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

func collectibleIndex(e *donburi.Entry) int { return components.Collectible.Get(e).Index }

// UpdateCollectibles wobbles and animates every carrot, newest first, then
// removes the ones the player overlaps and adds them to the tally.
func UpdateCollectibles(w donburi.World) {
	entries := indexedEntries(w, tags.Collectible, collectibleIndex)

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		c := components.Collectible.Get(e)
		body := components.Body.Get(e)

		c.PhaseX += cfg.Collectible.PhaseStepX
		c.PhaseY += cfg.Collectible.PhaseStepY
		body.X = c.BaseX + math.Cos(c.PhaseX)*cfg.Collectible.AmplitudeX
		body.Y = c.BaseY + math.Sin(c.PhaseY)*cfg.Collectible.AmplitudeY

		animations.Animate(components.Animation.Get(e).Current)

		if obj := components.Object.Get(e); obj.Object != nil {
			obj.X, obj.Y = body.X, body.Y
			obj.Update()
		}
	}

	player, ok := PlayerOf(w)
	if !ok {
		return
	}
	playerBody := *components.Body.Get(player)
	candidates, hasSpace := broadPhase(player, tags.ResolvCollectible)
	zone := ZoneOf(w)

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if hasSpace && !candidates[e.Entity()] {
			continue
		}
		if !components.Body.Get(e).Overlaps(playerBody) {
			continue
		}

		index := collectibleIndex(e)
		RemoveEntry(w, e)
		if zone != nil {
			zone.Collected++
			logger.Log.WithFields(logrus.Fields{
				"zone":      zone.Zone.ID,
				"index":     index,
				"collected": zone.Collected,
			}).Debug("carrot collected")
		}
	}
}

// UpdateDecorations advances every decoration's animation.
func UpdateDecorations(w donburi.World) {
	components.Decoration.Each(w, func(e *donburi.Entry) {
		animations.Animate(components.Animation.Get(e).Current)
	})
}
