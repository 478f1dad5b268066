package core

import (
	"github.com/automoto/scroller/shared/gamemath"
	"github.com/automoto/scroller/shared/intent"
	"github.com/automoto/scroller/shared/simconfig"
)

// Integrate applies input and gravity and moves the player to its tentative
// position for this frame. Collisions are not considered here.
func Integrate(p *Player, in intent.Intent, phys simconfig.PhysicsConfig) {
	p.prev = p.Position

	// --- Horizontal input: set, not accumulated ---
	p.Velocity.X = gamemath.DirectionalSpeed(in.MoveLeft, in.MoveRight, p.Speed)

	// --- Jump (only from the ground the previous frame left us on) ---
	if in.Jump && p.Grounded {
		p.Velocity.Y = -p.JumpImpulse
		p.Grounded = false
	}

	// --- Gravity, applied after the jump so a jump frame still falls once ---
	p.Velocity.Y = gamemath.ClampFall(p.Velocity.Y+phys.Gravity, p.TerminalFallSpeed)

	p.Position.X += p.Velocity.X
	p.Position.Y += p.Velocity.Y
}
