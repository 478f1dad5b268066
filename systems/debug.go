package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/automoto/scroller/fonts"
	"github.com/automoto/scroller/sim/core"
	"github.com/automoto/scroller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// contactTrail is how many recent frames of contacts the overlay marks.
const contactTrail = 30

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	simData := components.Simulation.Get(playerEntry)
	sim := simData.Sim
	offset := simData.State.ScrollOffset
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Scroll boundary
	boundary := float32(sim.Camera().Boundary())
	vector.FillRect(screen, boundary, 0, 1, float32(height), cfg.Render.BoundaryColor, false)

	// Draw all collision objects in the space; they live in space coordinates
	// shifted by the level origin.
	level := sim.Level()
	if space := level.Space(); space != nil {
		origin := level.Origin()
		viewX := offset
		viewW := float64(width)

		for _, obj := range space.Objects() {
			wx := obj.X + origin.X
			wy := obj.Y + origin.Y

			// Cull objects outside viewport
			if wx+obj.W < viewX || wx > viewX+viewW {
				continue
			}

			c := cfg.Debug.SpaceColor
			switch {
			case obj.HasTags(tags.ResolvPlatform):
			case obj.HasTags(tags.ResolvProbe):
				c = cfg.Debug.ProbeColor
			default:
				continue
			}
			drawOutline(screen, wx-offset, wy, obj.W, obj.H, c)
		}
	}

	// Mark the faces the resolver pushed the player off recently
	history := sim.History()
	from := uint64(0)
	if latest := history.Latest(); latest > contactTrail {
		from = latest - contactTrail
	}
	for _, rec := range history.Since(from) {
		for _, c := range rec.State.Contacts {
			drawContact(screen, level.Platform(c.Platform), c.Side, offset)
		}
	}

	st := simData.State
	info := fmt.Sprintf("frame %d  vel %.2f, %.2f  contacts %v", st.Frame, st.Velocity.X, st.Velocity.Y, st.Contacts)
	text.Draw(screen, info, fonts.Debug.Get(), int(cfg.HUD.Margin), height-int(cfg.HUD.Margin), cfg.Debug.ContactColor)
}

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

func drawContact(screen *ebiten.Image, p core.Platform, side core.Side, offset float64) {
	r := p.Rect()
	x := r.X - offset
	c := cfg.Debug.ContactColor

	switch side {
	case core.SideTop:
		vector.FillRect(screen, float32(x), float32(r.Y), float32(r.W), 2, c, false)
	case core.SideBottom:
		vector.FillRect(screen, float32(x), float32(r.Bottom()-2), float32(r.W), 2, c, false)
	case core.SideLeft:
		vector.FillRect(screen, float32(x), float32(r.Y), 2, float32(r.H), c, false)
	case core.SideRight:
		vector.FillRect(screen, float32(r.Right()-offset-2), float32(r.Y), 2, float32(r.H), c, false)
	}
}
