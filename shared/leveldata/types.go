// Package leveldata provides the level geometry consumed by the movement core:
// built-in layouts and TMX parsing. It has no dependencies on ebitengine,
// donburi or resolv — pure data only.
package leveldata

import "math"

// LevelData holds everything the core needs to build a level.
type LevelData struct {
	Name        string
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// SolidRect is one static platform, in world pixels. Order matters: the core
// resolves contacts in slice order.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y float64
}

// Bounds returns the extent covered by all rects and spawn points.
func (d *LevelData) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, r := range d.SolidRects {
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.X+r.W)
		maxY = math.Max(maxY, r.Y+r.H)
	}
	for _, s := range d.SpawnPoints {
		minX = math.Min(minX, s.X)
		minY = math.Min(minY, s.Y)
		maxX = math.Max(maxX, s.X)
		maxY = math.Max(maxY, s.Y)
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}
