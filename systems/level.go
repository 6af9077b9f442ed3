package systems

import (
	"slices"

	"github.com/automoto/burrow/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// ZoneOf returns the zone singleton, or nil before the first setup.
func ZoneOf(w donburi.World) *components.ZoneData {
	if e, ok := components.Zone.First(w); ok {
		return components.Zone.Get(e)
	}
	return nil
}

// SpaceOf returns the active zone's resolv space, or nil.
func SpaceOf(w donburi.World) *resolv.Space {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e)
	}
	return nil
}

// PlayerOf returns the player entry.
func PlayerOf(w donburi.World) (*donburi.Entry, bool) {
	return components.Player.First(w)
}

// RemoveEntry deletes e from the world and its broad phase object from the
// space it was registered in.
func RemoveEntry(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}

// indexedEntries returns the entries carrying tag sorted by ascending spawn
// index.
func indexedEntries(w donburi.World, tag donburi.IComponentType, index func(*donburi.Entry) int) []*donburi.Entry {
	var entries []*donburi.Entry
	query.NewQuery(filter.Contains(tag)).Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		return index(a) - index(b)
	})
	return entries
}

// broadPhase returns the entries whose objects share a space cell with the
// player's object and carry the given resolv tag. ok is false when the player
// is not registered in a space yet, or when its object reaches past the space
// bounds: objects beyond the grid have no cells there, so the caller has to
// test every entry.
func broadPhase(player *donburi.Entry, tag string) (map[donburi.Entity]bool, bool) {
	obj := components.Object.Get(player)
	if obj.Object == nil || obj.Space == nil {
		return nil, false
	}
	cx, cy, ex, ey := obj.BoundsToSpace(0, 0)
	if cx < 0 || cy < 0 || ex >= obj.Space.Width() || ey >= obj.Space.Height() {
		return nil, false
	}
	found := make(map[donburi.Entity]bool)
	if check := obj.Check(0, 0, tag); check != nil {
		for _, o := range check.ObjectsByTags(tag) {
			if e, ok := o.Data.(*donburi.Entry); ok {
				found[e.Entity()] = true
			}
		}
	}
	return found, true
}
