package factory

import (
	"fmt"
	"log"

	"github.com/automoto/scroller/archetypes"
	"github.com/automoto/scroller/components"
	"github.com/automoto/scroller/shared/intent"
	"github.com/automoto/scroller/shared/leveldata"
	"github.com/automoto/scroller/shared/simconfig"
	"github.com/automoto/scroller/sim/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewSimulation builds the collision level and a simulation for it.
func NewSimulation(data *leveldata.LevelData, cfg simconfig.SimConfig, viewportW, viewportH float64) (*core.Simulation, error) {
	lvl, err := core.NewLevel(data)
	if err != nil {
		return nil, err
	}
	sim, err := core.NewSimulation(cfg, lvl, viewportW, viewportH)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", data.Name, err)
	}
	log.Printf("Loaded level %q: %d platforms, spawn (%.0f, %.0f)",
		data.Name, lvl.NumPlatforms(), lvl.Spawn().X, lvl.Spawn().Y)
	return sim, nil
}

// CreatePlayer spawns the player entity driving sim.
func CreatePlayer(ecs *ecs.ECS, sim *core.Simulation) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Simulation.SetValue(player, components.SimulationData{
		Sim:   sim,
		Input: &intent.State{},
		State: sim.State(),
	})
	return player
}
