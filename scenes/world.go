package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/automoto/scroller/systems"
	"github.com/automoto/scroller/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs  *ecs.ECS
	once sync.Once

	width, height int
}

// NewPlatformerScene creates the scene for a viewport of the given size.
// Levels are loaded lazily on the first Update.
func NewPlatformerScene(width, height int) *PlatformerScene {
	return &PlatformerScene{width: width, height: height}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Resize forwards a new window size to the simulation.
func (ps *PlatformerScene) Resize(width, height int) {
	ps.width, ps.height = width, height
	if ps.ecs == nil {
		return
	}
	systems.ResizeViewport(ps.ecs, width, height)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateLevelSwitch)
	ecs.AddSystem(systems.UpdateSimulation)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	w, h := float64(ps.width), float64(ps.height)
	levels, names, err := factory.LoadLevels(cfg.Level.TMXDir, h)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	level := factory.CreateLevel(ps.ecs, levels, names, cfg.Level.Name)
	factory.CreateCamera(ps.ecs, w, h)
	systems.GetOrCreateSettings(ps.ecs)

	if err := systems.LoadLevel(ps.ecs, components.Level.Get(level).LevelIndex); err != nil {
		log.Fatalf("Failed to start level: %v", err)
	}
	systems.UpdateCamera(ps.ecs)
}
