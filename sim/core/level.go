package core

import (
	"fmt"
	stdmath "math"
	"sort"

	"github.com/automoto/scroller/shared/gamemath"
	"github.com/automoto/scroller/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Resolv tags used by the level space.
const (
	TagPlatform = "platform"
	TagProbe    = "probe"
)

const (
	cellSize    = 32
	spaceMargin = 4 * cellSize
	maxCells    = 1 << 16
	// maxExtent bounds the width and height a level may span, spawn included
	maxExtent = 1 << 30
	// probes are grown by this much so edge-touching boxes still share a cell
	probePadding = 1.0
)

// Level holds the ordered platform list and a resolv space used as the broad
// phase. A Level is owned by one Simulation; the probe object makes it unsafe
// to share between goroutines.
type Level struct {
	Name      string
	platforms []Platform
	spawn     math.Vec2

	space  *resolv.Space
	origin math.Vec2 // world position of space cell (0, 0)
	probe  *resolv.Object

	scratch []int
}

// NewLevel validates the level data and builds the collision space. An empty
// platform list is valid.
func NewLevel(data *leveldata.LevelData) (*Level, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: no level data", ErrInvalidLevel)
	}
	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%w: level %q has no player spawn", ErrInvalidLevel, data.Name)
	}

	spawn := data.SpawnPoints[0]
	if stdmath.IsNaN(spawn.X) || stdmath.IsInf(spawn.X, 0) || stdmath.IsNaN(spawn.Y) || stdmath.IsInf(spawn.Y, 0) {
		return nil, fmt.Errorf("%w: level %q spawn (%v, %v) is not finite", ErrInvalidLevel, data.Name, spawn.X, spawn.Y)
	}

	lvl := &Level{
		Name:      data.Name,
		platforms: make([]Platform, 0, len(data.SolidRects)),
		spawn:     math.NewVec2(spawn.X, spawn.Y),
	}
	for i, r := range data.SolidRects {
		p, err := NewPlatform(r.X, r.Y, r.W, r.H)
		if err != nil {
			return nil, fmt.Errorf("level %q platform %d: %w", data.Name, i, err)
		}
		lvl.platforms = append(lvl.platforms, p)
	}

	if minX, minY, maxX, maxY := data.Bounds(); maxX-minX > maxExtent || maxY-minY > maxExtent {
		return nil, fmt.Errorf("%w: level %q spans %.0fx%.0f, more than %d", ErrInvalidLevel, data.Name, maxX-minX, maxY-minY, maxExtent)
	}

	lvl.buildSpace(data)
	return lvl, nil
}

// buildSpace registers every platform in a resolv space translated so the
// level's top-left sits inside cell (0, 0); resolv ignores negative cells.
func (l *Level) buildSpace(data *leveldata.LevelData) {
	if len(l.platforms) == 0 {
		return
	}

	minX, minY, maxX, maxY := data.Bounds()
	l.origin = math.NewVec2(minX-spaceMargin, minY-spaceMargin)
	w := maxX - l.origin.X + spaceMargin
	h := maxY - l.origin.Y + spaceMargin

	cell := cellSize
	for (w/float64(cell))*(h/float64(cell)) > maxCells {
		cell *= 2
	}
	cols := int(stdmath.Ceil(w / float64(cell)))
	rows := int(stdmath.Ceil(h / float64(cell)))

	l.space = resolv.NewSpace(cols*cell, rows*cell, cell, cell)
	for i, p := range l.platforms {
		r := p.Rect()
		obj := resolv.NewObject(r.X-l.origin.X, r.Y-l.origin.Y, r.W, r.H, TagPlatform)
		obj.Data = i // index back into l.platforms
		l.space.Add(obj)
	}

	l.probe = resolv.NewObject(0, 0, 1, 1, TagProbe)
	l.space.Add(l.probe)
}

// Platforms returns a copy of the platform list in resolution order.
func (l *Level) Platforms() []Platform {
	out := make([]Platform, len(l.platforms))
	copy(out, l.platforms)
	return out
}

// Platform returns the i-th platform.
func (l *Level) Platform(i int) Platform {
	return l.platforms[i]
}

// NumPlatforms returns the number of platforms.
func (l *Level) NumPlatforms() int {
	return len(l.platforms)
}

// Spawn returns the player spawn position.
func (l *Level) Spawn() math.Vec2 {
	return l.spawn
}

// Space exposes the broad-phase space for debug drawing. Objects in it are
// offset by Origin. It is nil for a level without platforms.
func (l *Level) Space() *resolv.Space {
	return l.space
}

// Origin returns the world position of the space's top-left corner.
func (l *Level) Origin() math.Vec2 {
	return l.origin
}

// candidates returns the indices of platforms that may touch area, sorted
// into level order so resolution stays deterministic.
func (l *Level) candidates(area gamemath.Rect) []int {
	l.scratch = l.scratch[:0]
	if l.space == nil {
		return l.scratch
	}

	area = area.Inset(-probePadding)
	l.probe.X = area.X - l.origin.X
	l.probe.Y = area.Y - l.origin.Y
	l.probe.W = area.W
	l.probe.H = area.H
	l.probe.Update()

	check := l.probe.Check(0, 0, TagPlatform)
	if check == nil {
		return l.scratch
	}
	for _, obj := range check.ObjectsByTags(TagPlatform) {
		if i, ok := obj.Data.(int); ok {
			l.scratch = append(l.scratch, i)
		}
	}
	sort.Ints(l.scratch)
	return l.scratch
}
