// Package input samples the keyboard and gamepads into the Input component.
// It is the only simulation-side code that touches ebitengine, so the
// headless simulator never imports it.
package input

import (
	"github.com/automoto/mostro/components"
	"github.com/automoto/mostro/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// binding represents the keys and buttons bound to one action
type binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var bindings = map[components.ActionID]binding{
	components.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	components.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	components.ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	components.ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	components.ActionHit: {
		Keys:                   []ebiten.Key{ebiten.KeyH, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	components.ActionToggleSensors: {
		Keys:                   []ebiten.Key{ebiten.KeyF1},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	components.ActionCyclePolicy: {
		Keys: []ebiten.Key{ebiten.KeyF2},
	},
	components.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	components.ActionStep: {
		Keys: []ebiten.Key{ebiten.KeyN},
	},
	components.ActionSave: {
		Keys: []ebiten.Key{ebiten.KeyF5},
	},
}

// Update samples the keyboard and every standard gamepad into the
// singleton Input component. The stick keeps the strongest deflection.
func Update(ecs *ecs.ECS) {
	in := systems.GetOrCreateInput(ecs)
	in.Previous = in.Current

	gamepads := ebiten.AppendGamepadIDs(nil)
	for id, b := range bindings {
		in.Current[id] = pressed(b, gamepads)
	}

	in.Stick = [2]float64{}
	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if x*x+y*y > in.Stick[0]*in.Stick[0]+in.Stick[1]*in.Stick[1] {
			in.Stick = [2]float64{x, y}
		}
	}
}

func pressed(b binding, gamepads []ebiten.GamepadID) bool {
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}
