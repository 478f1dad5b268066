package systems

import (
	"log"

	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/automoto/scroller/sim/core"
	"github.com/automoto/scroller/systems/factory"
	"github.com/automoto/scroller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation advances every simulation by one host frame. ebiten calls
// Update at a fixed 60 TPS, so each frame is a single sub-step.
func UpdateSimulation(e *ecs.ECS) {
	input := getOrCreateInput(e)
	reset := GetHostAction(input, cfg.HostReset).JustPressed

	components.Simulation.Each(e.World, func(entry *donburi.Entry) {
		sim := components.Simulation.Get(entry)
		if reset {
			sim.Sim.Reset()
		}
		sim.State = sim.Sim.Step(sim.Input.Snapshot(), core.Delta{Steps: 1})
	})
}

// UpdateLevelSwitch swaps in the next level when its key is pressed.
func UpdateLevelSwitch(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !GetHostAction(input, cfg.HostNextLevel).JustPressed {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if len(level.Names) < 2 {
		return
	}

	next := (level.LevelIndex + 1) % len(level.Names)
	if err := LoadLevel(e, next); err != nil {
		log.Printf("Warning: could not switch level: %v", err)
		return
	}
	SaveCurrentSettings(e)
}

// LoadLevel replaces the player's simulation with one for the level at index,
// keeping the current viewport.
func LoadLevel(e *ecs.ECS, index int) error {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	level := components.Level.Get(levelEntry)
	name := level.Names[index]

	width, height := viewportSize(e)
	sim, err := factory.NewSimulation(level.Levels[name], cfg.SimConfig(), width, height)
	if err != nil {
		return err
	}
	level.LevelIndex = index

	if playerEntry, ok := tags.Player.First(e.World); ok {
		data := components.Simulation.Get(playerEntry)
		data.Input.ReleaseAll()
		data.Sim = sim
		data.State = sim.State()
	} else {
		factory.CreatePlayer(e, sim)
	}
	return nil
}

func viewportSize(e *ecs.ECS) (float64, float64) {
	if entry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(entry)
		return cam.Viewport.X, cam.Viewport.Y
	}
	return float64(cfg.C.Width), float64(cfg.C.Height)
}
