package factory

import (
	"fmt"

	"github.com/automoto/burrow/assets/animations"
	cfg "github.com/automoto/burrow/config"
)

// frameSets holds one *FrameSet per configured name so that switching to the
// same name twice is recognised as the same set.
var frameSets = func() map[string]*animations.FrameSet {
	sets := make(map[string]*animations.FrameSet, len(cfg.FrameSets))
	for name, frames := range cfg.FrameSets {
		sets[name] = animations.NewFrameSet(name, frames...)
	}
	return sets
}()

// FrameSet returns the shared frame set registered under name.
func FrameSet(name string) *animations.FrameSet {
	set, ok := frameSets[name]
	if !ok {
		panic(fmt.Sprintf("No frame set found for key: %s", name))
	}
	return set
}
