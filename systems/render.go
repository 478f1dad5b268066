package systems

import (
	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer renders each player box at its screen position. Airborne players
// are tinted so landing is visible without the debug overlay.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Simulation.Each(ecs.World, func(e *donburi.Entry) {
		st := components.Simulation.Get(e).State

		c := cfg.Render.PlayerColor
		if !st.Grounded {
			c = cfg.Render.AirborneColor
		}
		vector.FillRect(screen,
			float32(st.PlayerScreen.X), float32(st.PlayerScreen.Y),
			float32(st.PlayerSize.X), float32(st.PlayerSize.Y),
			c, false)
	})
}
