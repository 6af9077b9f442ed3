package scenes

import (
	"github.com/automoto/burrow/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps actions to keys and gamepad buttons.
var Bindings = [ActionCount]InputBinding{
	ActionMoveLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		// D-pad Left (analog stick handled separately)
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	ActionMoveRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		// D-pad Right (analog stick handled separately)
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	ActionJump: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeySpace, ebiten.KeyW, ebiten.KeyX},
		// A / Cross button, D-pad Up
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	ActionPause: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
}

// AnalogDeadzone is the left stick threshold for horizontal movement.
const AnalogDeadzone = 0.25

// DebugKey toggles the collision overlay.
const DebugKey = ebiten.KeyF1

// Input polls keyboard and gamepads once per host frame.
type Input struct {
	current  [ActionCount]bool
	previous [ActionCount]bool
	gamepads []ebiten.GamepadID
}

// Poll swaps buffers and reads the bound keys, buttons and left stick.
func (in *Input) Poll() {
	in.previous = in.current
	in.current = [ActionCount]bool{}

	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])

	for id, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.current[id] = true
			}
		}
		for _, gp := range in.gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
					in.current[id] = true
				}
			}
		}
	}

	for _, gp := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -AnalogDeadzone {
			in.current[ActionMoveLeft] = true
		}
		if h > AnalogDeadzone {
			in.current[ActionMoveRight] = true
		}
	}
}

// Intents converts the polled state. Jump is reported only on the frame the
// action was first pressed.
func (in *Input) Intents() systems.Intents {
	return systems.Intents{
		Left:  in.current[ActionMoveLeft],
		Right: in.current[ActionMoveRight],
		Jump:  in.current[ActionJump] && !in.previous[ActionJump],
	}
}

// PauseToggled reports whether the pause action went down this frame.
func (in *Input) PauseToggled() bool {
	return in.current[ActionPause] && !in.previous[ActionPause]
}

// DebugToggled reports whether the debug key went down this frame.
func (in *Input) DebugToggled() bool {
	return inpututil.IsKeyJustPressed(DebugKey)
}
