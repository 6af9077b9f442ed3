package session

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade tracks the opacity of the overlay drawn while zones change.
type Fade struct {
	seconds float32
	alpha   float32
	tween   *gween.Tween
}

func NewFade(seconds float32) *Fade {
	return &Fade{seconds: seconds}
}

// Out starts fading to fully covered.
func (f *Fade) Out() { f.to(1) }

// In starts fading back to clear.
func (f *Fade) In() { f.to(0) }

func (f *Fade) to(target float32) {
	if f.seconds <= 0 {
		f.alpha = target
		f.tween = nil
		return
	}
	f.tween = gween.New(f.alpha, target, f.seconds, ease.InOutQuad)
}

// Update advances the fade by dt seconds.
func (f *Fade) Update(dt float32) {
	if f.tween == nil {
		return
	}
	alpha, done := f.tween.Update(dt)
	f.alpha = alpha
	if done {
		f.tween = nil
	}
}

// Alpha is the overlay opacity in [0, 1].
func (f *Fade) Alpha() float32 {
	return f.alpha
}

// Covered reports whether the screen is fully hidden.
func (f *Fade) Covered() bool {
	return f.tween == nil && f.alpha >= 1
}

// Active reports whether a fade is running or the overlay is visible.
func (f *Fade) Active() bool {
	return f.tween != nil || f.alpha > 0
}
