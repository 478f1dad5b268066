package archetypes

import (
	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/automoto/scroller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Simulation,
		components.State,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
