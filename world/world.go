// Package world owns the simulation state of one play session: the active
// zone, its entities, and the player, which persists across zones.
package world

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/burrow/archetypes"
	"github.com/automoto/burrow/components"
	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/logger"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/zonedata"
	"github.com/automoto/burrow/systems"
	"github.com/automoto/burrow/systems/factory"
	"github.com/automoto/burrow/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

type World struct {
	ecs      donburi.World
	collider *systems.Collider
	rng      *rand.Rand

	player  *donburi.Entry
	zone    *donburi.Entry
	intents systems.Intents
}

type Option func(*World)

// WithRand sets the source used for collectible phases and start frames.
func WithRand(r *rand.Rand) Option {
	return func(w *World) { w.rng = r }
}

// New creates a world with the player at its configured spawn point. Call
// Setup before the first Update.
func New(opts ...Option) *World {
	w := &World{
		ecs:      donburi.NewWorld(),
		collider: systems.NewCollider(cfg.Physics.TileSize, cfg.Physics.CollisionEpsilon),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	w.zone = archetypes.Zone.Spawn(w.ecs)
	components.Zone.SetValue(w.zone, components.ZoneData{})
	w.player = factory.CreatePlayer(w.ecs, cfg.Player.SpawnX, cfg.Player.SpawnY)
	return w
}

// Setup replaces the active zone and its entities. When a door is pending
// the player is moved to the door's destination, axis by axis, and the door
// is cleared. The collected tally carries over.
func (w *World) Setup(z *zonedata.Zone) error {
	if err := z.Validate(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	obj := components.Object.Get(w.player)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	w.clearZoneEntities()

	ts := cfg.Physics.TileSize
	spaceEntry := factory.CreateSpace(w.ecs, z.Width(ts), z.Height(ts), ts, ts)
	space := components.Space.Get(spaceEntry)

	for i, cell := range z.Collectibles {
		factory.CreateCollectible(w.ecs, space, cell.Column(), cell.Row(), i, w.rng)
	}
	for i, cell := range z.Decorations {
		factory.CreateDecoration(w.ecs, cell.Column(), cell.Row(), i)
	}
	for i, spec := range z.Doors {
		factory.CreateDoor(w.ecs, space, spec, i)
	}

	zone := components.Zone.Get(w.zone)
	zone.Zone = z

	body := components.Body.Get(w.player)
	motion := components.Motion.Get(w.player)
	if door := zone.PendingDoor; door != nil {
		if door.DestinationX != zonedata.KeepAxis {
			body.SetCenterX(door.DestinationX)
			motion.OldX = body.X
		}
		if door.DestinationY != zonedata.KeepAxis {
			body.SetCenterY(door.DestinationY)
			motion.OldY = body.Y
		}
		zone.PendingDoor = nil
	}

	reach := factory.PlayerReach(*body)
	obj.X, obj.Y = reach.X, reach.Y
	space.Add(obj.Object)

	logger.Log.WithFields(logrus.Fields{
		"zone":         z.ID,
		"columns":      z.Columns,
		"rows":         z.Rows,
		"collectibles": len(z.Collectibles),
		"doors":        len(z.Doors),
	}).Info("zone ready")
	return nil
}

func (w *World) clearZoneEntities() {
	var stale []*donburi.Entry
	tags.ZoneScoped.Each(w.ecs, func(e *donburi.Entry) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		systems.RemoveEntry(w.ecs, e)
	}
}

// SetIntents queues player input for the next Update. A jump press survives
// until an Update consumes it.
func (w *World) SetIntents(in systems.Intents) {
	w.intents = w.intents.Merge(in)
}

// Update advances the simulation by one fixed step.
func (w *World) Update() {
	systems.ApplyIntents(w.ecs, w.intents)
	w.intents.Jump = false

	systems.UpdatePhysics(w.ecs)
	systems.UpdateCollisions(w.ecs, w.collider)
	systems.UpdateObjects(w.ecs)
	systems.UpdateCollectibles(w.ecs)
	systems.UpdateDoors(w.ecs)
	systems.UpdateDecorations(w.ecs)
	systems.UpdatePlayerAnimation(w.ecs)
}

// PendingDoor returns a copy of the door the player entered, or nil.
func (w *World) PendingDoor() *components.DoorData {
	door := components.Zone.Get(w.zone).PendingDoor
	if door == nil {
		return nil
	}
	d := *door
	return &d
}

// Collected returns the number of collectibles taken across all zones.
func (w *World) Collected() int {
	return components.Zone.Get(w.zone).Collected
}

// Zone returns the active zone, or nil before the first Setup.
func (w *World) Zone() *zonedata.Zone {
	return components.Zone.Get(w.zone).Zone
}

// ECS exposes the entity world to renderers.
func (w *World) ECS() donburi.World {
	return w.ecs
}

// Player returns the player entry.
func (w *World) Player() *donburi.Entry {
	return w.player
}

// PlayerBody returns the player's current rectangle.
func (w *World) PlayerBody() gamemath.Rect {
	return *components.Body.Get(w.player)
}

// PlayerMotion returns the player's motion state.
func (w *World) PlayerMotion() components.MotionData {
	return *components.Motion.Get(w.player)
}

// PlacePlayer moves the player's top left corner to (x, y) and resets its
// previous position to match.
func (w *World) PlacePlayer(x, y float64) {
	body := components.Body.Get(w.player)
	motion := components.Motion.Get(w.player)
	body.X, body.Y = x, y
	motion.OldX, motion.OldY = x, y
	systems.UpdateObjects(w.ecs)
}

// SetPlayerVelocity overrides the player's velocity.
func (w *World) SetPlayerVelocity(vx, vy float64) {
	motion := components.Motion.Get(w.player)
	motion.VelocityX, motion.VelocityY = vx, vy
}

// CollectibleCount returns the number of live collectibles in the zone.
func (w *World) CollectibleCount() int {
	return query.NewQuery(filter.Contains(tags.Collectible)).Count(w.ecs)
}

// DecorationCount returns the number of decorations in the zone.
func (w *World) DecorationCount() int {
	return query.NewQuery(filter.Contains(tags.Decoration)).Count(w.ecs)
}

// DoorCount returns the number of doors in the zone.
func (w *World) DoorCount() int {
	return query.NewQuery(filter.Contains(tags.Door)).Count(w.ecs)
}
