package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Collectible = donburi.NewTag().SetName("Collectible")
	Decoration  = donburi.NewTag().SetName("Decoration")
	Door        = donburi.NewTag().SetName("Door")
	// ZoneScoped marks entities rebuilt on every zone setup.
	ZoneScoped = donburi.NewTag().SetName("ZoneScoped")
)

// Resolv tags for broad phase lookups
const (
	ResolvPlayer      = "player"
	ResolvCollectible = "collectible"
	ResolvDoor        = "door"
)
