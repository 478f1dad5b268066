package core

import (
	"github.com/automoto/scroller/shared/gamemath"
	"github.com/automoto/scroller/shared/simconfig"
	"github.com/yohamta/donburi/features/math"
)

// Player is the single moving entity. Position is the world-space top-left of
// its box, y down. Velocity is in world units per frame.
type Player struct {
	Position math.Vec2
	Velocity math.Vec2
	Width    float64
	Height   float64
	Grounded bool

	Speed             float64
	JumpImpulse       float64
	TerminalFallSpeed float64

	// position before the latest integration, used for swept checks
	prev math.Vec2
}

// NewPlayer creates a player at rest at spawn.
func NewPlayer(spawn math.Vec2, cfg simconfig.PlayerConfig) *Player {
	return &Player{
		Position:          spawn,
		Width:             cfg.Width,
		Height:            cfg.Height,
		Speed:             cfg.Speed,
		JumpImpulse:       cfg.JumpImpulse,
		TerminalFallSpeed: cfg.TerminalFallSpeed,
		prev:              spawn,
	}
}

// Teleport moves the player without a sweep: the resolver sees no motion
// history, so a player placed inside a platform stays there.
func (p *Player) Teleport(pos math.Vec2) {
	p.Position = pos
	p.prev = pos
	p.Velocity = math.Vec2{}
	p.Grounded = false
}

// Bounds returns the current box.
func (p *Player) Bounds() gamemath.Rect {
	return gamemath.Rect{X: p.Position.X, Y: p.Position.Y, W: p.Width, H: p.Height}
}

// PrevBounds returns the box before the latest integration.
func (p *Player) PrevBounds() gamemath.Rect {
	return gamemath.Rect{X: p.prev.X, Y: p.prev.Y, W: p.Width, H: p.Height}
}
