package systems

import (
	"log"

	"github.com/automoto/scroller/components"
	"github.com/automoto/scroller/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera copies the simulation's scroll state into the camera component.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(playerEntry)
	camera.Offset = sim.State.ScrollOffset
	camera.Boundary = sim.Sim.Camera().Boundary()
}

// ResizeViewport applies a new window size to the camera and simulation. An
// invalid size (e.g. a minimised window) is ignored.
func ResizeViewport(e *ecs.ECS, width, height int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := float64(width), float64(height)
	if camera.Viewport.X == w && camera.Viewport.Y == h {
		return
	}

	if playerEntry, ok := tags.Player.First(e.World); ok {
		sim := components.Simulation.Get(playerEntry)
		if err := sim.Sim.Resize(w, h); err != nil {
			log.Printf("Warning: ignoring resize: %v", err)
			return
		}
		sim.State = sim.Sim.State()
		camera.Boundary = sim.Sim.Camera().Boundary()
	}
	camera.Viewport = math.NewVec2(w, h)
}
