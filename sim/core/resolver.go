package core

// Side names the platform face a contact was resolved against.
type Side int

const (
	SideTop    Side = iota // landed on the platform
	SideBottom             // hit the underside while rising
	SideLeft               // ran into the left face while moving right
	SideRight              // ran into the right face while moving left
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// Contact records one correction made by the resolver.
type Contact struct {
	Platform int // index in level order
	Side     Side
}

// sweepEpsilon absorbs float drift in "was outside before this frame" tests,
// e.g. (top-h)+h landing one ulp below top.
const sweepEpsilon = 1e-6

// Resolve corrects the player's tentative position against the level and
// recomputes Grounded. The vertical axis is resolved first, then the
// horizontal axis against the corrected box. Per axis the first platform in
// level order that qualifies wins. A landing is dropped again if the
// horizontal correction leaves the player beside that platform. Contacts are
// appended to dst.
//
// Only crossings are resolved: a player that starts the frame already inside a
// platform is left where it is.
func Resolve(p *Player, lvl *Level, dst []Contact) []Contact {
	p.Grounded = false
	if lvl == nil || len(lvl.platforms) == 0 {
		return dst
	}

	cands := lvl.candidates(p.Bounds().Union(p.PrevBounds()))
	if len(cands) == 0 {
		return dst
	}

	y, vy := p.Position.Y, p.Velocity.Y
	start := len(dst)
	dst = resolveVertical(p, lvl, cands, dst)
	dst = resolveHorizontal(p, lvl, cands, dst)

	// A wall clamp can carry the player off the platform it just landed on.
	if p.Grounded && !p.Bounds().OverlapsX(lvl.platforms[dst[start].Platform].Rect()) {
		p.Grounded = false
		p.Position.Y, p.Velocity.Y = y, vy
		dst = append(dst[:start], dst[start+1:]...)
	}
	return dst
}

func resolveVertical(p *Player, lvl *Level, cands []int, dst []Contact) []Contact {
	box := p.Bounds()
	prev := p.PrevBounds()

	for _, i := range cands {
		plat := lvl.platforms[i]
		if !box.OverlapsX(plat.Rect()) {
			continue
		}

		if p.Velocity.Y >= 0 {
			// Landing: bottom edge swept through the top surface
			if prev.Bottom() <= plat.Top()+sweepEpsilon && box.Bottom() >= plat.Top() {
				p.Position.Y = plat.Top() - p.Height
				p.Velocity.Y = 0
				p.Grounded = true
				return append(dst, Contact{Platform: i, Side: SideTop})
			}
			continue
		}

		// Ceiling: top edge swept up through the underside
		if prev.Y >= plat.Bottom()-sweepEpsilon && box.Y < plat.Bottom() {
			p.Position.Y = plat.Bottom()
			p.Velocity.Y = 0
			return append(dst, Contact{Platform: i, Side: SideBottom})
		}
	}
	return dst
}

func resolveHorizontal(p *Player, lvl *Level, cands []int, dst []Contact) []Contact {
	if p.Velocity.X == 0 {
		return dst
	}

	box := p.Bounds()
	prev := p.PrevBounds()

	for _, i := range cands {
		plat := lvl.platforms[i]
		if !box.OverlapsY(plat.Rect()) {
			continue
		}

		if p.Velocity.X > 0 {
			if prev.Right() <= plat.Left()+sweepEpsilon && box.Right() > plat.Left() {
				p.Position.X = plat.Left() - p.Width
				p.Velocity.X = 0
				return append(dst, Contact{Platform: i, Side: SideLeft})
			}
			continue
		}

		if prev.X >= plat.Right()-sweepEpsilon && box.X < plat.Right() {
			p.Position.X = plat.Right()
			p.Velocity.X = 0
			return append(dst, Contact{Platform: i, Side: SideRight})
		}
	}
	return dst
}
