package factory

import (
	"github.com/automoto/scroller/archetypes"
	"github.com/automoto/scroller/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, width, height float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Viewport: math.NewVec2(width, height),
	})
}
