package tags

import (
	"github.com/automoto/scroller/sim/core"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Level  = donburi.NewTag().SetName("Level")
	Camera = donburi.NewTag().SetName("Camera")
)

// Resolv tags used by the level's broad-phase space
const (
	ResolvPlatform = core.TagPlatform
	ResolvProbe    = core.TagProbe
)
