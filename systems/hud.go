package systems

import (
	"fmt"

	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/automoto/scroller/fonts"
	"github.com/automoto/scroller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level name, scroll offset and player status in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	st := components.Simulation.Get(playerEntry).State

	levelName := ""
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		levelName = components.Level.Get(levelEntry).CurrentName()
	}

	status := cfg.StateNone
	if playerEntry.HasComponent(components.State) {
		status = components.State.Get(playerEntry).CurrentState
	}

	lines := []string{
		fmt.Sprintf("Level: %s", levelName),
		fmt.Sprintf("Scroll: %.0f", st.ScrollOffset),
		fmt.Sprintf("Player: %.0f, %.0f (%s)", st.PlayerWorld.X, st.PlayerWorld.Y, status),
	}

	face := fonts.HUD.Get()
	x := int(cfg.HUD.Margin)
	y := cfg.HUD.Margin + cfg.HUD.LineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, x, int(y), cfg.HUD.TextColor)
		y += cfg.HUD.LineHeight
	}
}
