package components

import (
	"github.com/automoto/scroller/shared/intent"
	"github.com/automoto/scroller/sim/core"
	"github.com/yohamta/donburi"
)

// SimulationData owns the movement core for the player entity. Input is the
// key map the input system writes and Step snapshots.
type SimulationData struct {
	Sim   *core.Simulation
	Input *intent.State
	State core.RenderState
}

var Simulation = donburi.NewComponentType[SimulationData]()
