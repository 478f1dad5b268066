package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData mirrors the simulation's scroll camera for renderers.
type CameraData struct {
	Offset   float64
	Boundary float64
	Viewport math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
