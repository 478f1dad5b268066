package core

import (
	"fmt"

	"github.com/automoto/scroller/shared/gamemath"
)

// Platform is a static solid rectangle. It is immutable once built.
type Platform struct {
	rect gamemath.Rect
}

// NewPlatform validates and builds a platform.
func NewPlatform(x, y, w, h float64) (Platform, error) {
	r := gamemath.Rect{X: x, Y: y, W: w, H: h}
	if !r.Finite() {
		return Platform{}, fmt.Errorf("%w: non-finite rect %+v", ErrInvalidPlatform, r)
	}
	if w <= 0 || h <= 0 {
		return Platform{}, fmt.Errorf("%w: size %vx%v must be positive", ErrInvalidPlatform, w, h)
	}
	return Platform{rect: r}, nil
}

func (p Platform) Rect() gamemath.Rect { return p.rect }
func (p Platform) Left() float64       { return p.rect.X }
func (p Platform) Top() float64        { return p.rect.Y }
func (p Platform) Right() float64      { return p.rect.Right() }
func (p Platform) Bottom() float64     { return p.rect.Bottom() }
