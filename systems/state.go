package systems

import (
	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/automoto/scroller/sim/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives each player's movement state from its latest render
// state and keeps the matching state tag component attached.
// Must run AFTER UpdateSimulation.
func UpdateStates(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Simulation) {
			return
		}
		st := components.Simulation.Get(e).State
		state := components.State.Get(e)

		next := movementState(st)
		if next == state.CurrentState {
			state.StateTimer++
			return
		}
		state.PreviousState = state.CurrentState
		state.CurrentState = next
		state.StateTimer = 0
		updatePlayerStateTags(e, state)
	})
}

func movementState(st core.RenderState) cfg.StateID {
	switch {
	case !st.Grounded && st.Velocity.Y < 0:
		return cfg.Jump
	case !st.Grounded:
		return cfg.Fall
	case st.Velocity.X != 0:
		return cfg.Running
	default:
		return cfg.Idle
	}
}

func updatePlayerStateTags(e *donburi.Entry, state *components.StateData) {
	// Remove all state tags
	removeAllStateTags(e)

	// Add the current state tag
	switch state.CurrentState {
	case cfg.Idle:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case cfg.Running:
		donburi.Add(e, components.Running, &components.RunningState{})
	case cfg.Jump:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	case cfg.Fall:
		donburi.Add(e, components.Falling, &components.FallingState{})
	}
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.RunningState](e, components.Running)
	donburi.Remove[components.JumpingState](e, components.Jumping)
	donburi.Remove[components.FallingState](e, components.Falling)
}
