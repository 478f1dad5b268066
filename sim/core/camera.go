package core

import (
	"fmt"
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// ScrollCamera maps world space to screen space with a horizontal offset:
// screenX = worldX - Offset. Offset never goes below zero.
type ScrollCamera struct {
	Offset float64

	width    float64
	height   float64
	fraction float64
}

// NewScrollCamera creates a camera for a viewport. boundaryFraction places the
// scroll boundary at that fraction of the viewport width.
func NewScrollCamera(width, height, boundaryFraction float64) (*ScrollCamera, error) {
	if !(boundaryFraction > 0 && boundaryFraction < 1) {
		return nil, fmt.Errorf("%w: boundary fraction %v outside (0, 1)", ErrInvalidViewport, boundaryFraction)
	}
	c := &ScrollCamera{fraction: boundaryFraction}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// Resize updates the viewport size. Offset is preserved; an invalid size is
// rejected and leaves the camera unchanged.
func (c *ScrollCamera) Resize(width, height float64) error {
	if !validExtent(width) || !validExtent(height) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidViewport, width, height)
	}
	c.width = width
	c.height = height
	return nil
}

func validExtent(v float64) bool {
	return v > 0 && !stdmath.IsInf(v, 0) // NaN fails v > 0
}

// Size returns the viewport size.
func (c *ScrollCamera) Size() (width, height float64) {
	return c.width, c.height
}

// Boundary returns the screen x the player is pinned to while scrolling.
func (c *ScrollCamera) Boundary() float64 {
	return c.width * c.fraction
}

// Reset scrolls back to the level start.
func (c *ScrollCamera) Reset() {
	c.Offset = 0
}

// Follow updates Offset from the player's resolved world position and returns
// the player's screen position. Scrolling follows the direction the player
// actually moved this frame, so a player stopped by a wall does not drag the
// view. The player is kept from leaving the left edge of the view.
func (c *ScrollCamera) Follow(p *Player) math.Vec2 {
	boundary := c.Boundary()
	dx := p.Position.X - p.prev.X
	screenX := p.Position.X - c.Offset

	switch {
	case dx > 0 && screenX > boundary:
		c.Offset = p.Position.X - boundary
	case dx < 0 && c.Offset > 0 && screenX < boundary:
		c.Offset = stdmath.Max(0, p.Position.X-boundary)
	}

	if p.Position.X < c.Offset {
		p.Position.X = c.Offset
		p.Velocity.X = 0
	}

	return c.ToScreen(p.Position)
}

// ToScreen converts a world position to screen space.
func (c *ScrollCamera) ToScreen(world math.Vec2) math.Vec2 {
	return math.NewVec2(world.X-c.Offset, world.Y)
}

// ToWorld converts a screen position to world space.
func (c *ScrollCamera) ToWorld(screen math.Vec2) math.Vec2 {
	return math.NewVec2(screen.X+c.Offset, screen.Y)
}
