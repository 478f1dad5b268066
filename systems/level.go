package systems

import (
	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/automoto/scroller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills the background and draws every visible platform shifted by
// the scroll offset.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.BackgroundColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	level := components.Simulation.Get(playerEntry).Sim.Level()

	width := float64(screen.Bounds().Dx())
	minX := camera.Offset
	maxX := camera.Offset + width

	for i := 0; i < level.NumPlatforms(); i++ {
		p := level.Platform(i)

		// Viewport culling, horizontal only since the view never scrolls vertically
		if p.Right() < minX || p.Left() > maxX {
			continue
		}

		r := p.Rect()
		vector.FillRect(screen,
			float32(r.X-camera.Offset), float32(r.Y),
			float32(r.W), float32(r.H),
			cfg.Render.PlatformColor, false)
	}
}
