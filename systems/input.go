package systems

import (
	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/automoto/scroller/shared/intent"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input, updates the InputComponent and forwards the
// movement actions into each simulation's key map.
// Must run BEFORE UpdateSimulation in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [intent.ActionCount]bool{}
	input.HostPrevious = input.HostCurrent
	input.HostCurrent = [cfg.HostCount]bool{}

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		kb, gp := pollBinding(binding, gamepadIDs)
		input.Current[actionID] = kb || gp
		keyboardUsed = keyboardUsed || kb
		gamepadUsed = gamepadUsed || gp
	}
	for actionID, binding := range cfg.Input.HostBindings {
		kb, gp := pollBinding(binding, gamepadIDs)
		input.HostCurrent[actionID] = kb || gp
	}

	// Merge analog stick into directional actions
	left, right := getAnalogStickState(gamepadIDs)
	if left {
		input.Current[intent.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if right {
		input.Current[intent.ActionMoveRight] = true
		gamepadUsed = true
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	components.Simulation.Each(ecs.World, func(entry *donburi.Entry) {
		state := components.Simulation.Get(entry).Input
		for a := intent.ActionNone + 1; a < intent.ActionCount; a++ {
			state.Set(a, input.Current[a])
		}
	})
}

// pollBinding reports whether any key or gamepad button of binding is held.
func pollBinding(binding cfg.InputBinding, gamepads []ebiten.GamepadID) (keyboard, gamepad bool) {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			keyboard = true
		}
	}
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				gamepad = true
			}
		}
	}
	return keyboard, gamepad
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetHostAction returns the full ActionState for a host action.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetHostAction(input *components.InputData, id cfg.HostAction) components.ActionState {
	curr := input.HostCurrent[id]
	prev := input.HostPrevious[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
