package gamemath

import "math"

// Rect is an axis-aligned box anchored at its top-left corner, y down.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// OverlapsX reports whether the horizontal ranges share interior points.
// Boxes that only touch at an edge do not overlap.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X
}

// OverlapsY is the vertical counterpart of OverlapsX.
func (r Rect) OverlapsY(o Rect) bool {
	return r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Intersects reports interior overlap on both axes.
func (r Rect) Intersects(o Rect) bool {
	return r.OverlapsX(o) && r.OverlapsY(o)
}

// Union returns the smallest rect containing both.
func (r Rect) Union(o Rect) Rect {
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Max(r.Right(), o.Right()) - x,
		H: math.Max(r.Bottom(), o.Bottom()) - y,
	}
}

// Inset grows (negative d) or shrinks (positive d) the rect on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Finite reports whether every field is a finite number.
func (r Rect) Finite() bool {
	for _, v := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
