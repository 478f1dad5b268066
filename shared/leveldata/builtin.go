package leveldata

import (
	"fmt"
	"math"
	"sort"
)

const (
	// Meadow is a single-screen level with a floor and two ledges.
	Meadow = "meadow"
	// Outline is a long stair-step level that scrolls, laid out relative to the
	// viewport height so the floor sits near the bottom of the window.
	Outline = "outline"
)

var builtins = map[string]func(viewportH float64) *LevelData{
	Meadow:  meadowLevel,
	Outline: outlineLevel,
}

// BuiltinNames returns the built-in level names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a fresh copy of a built-in level. viewportH only affects
// layouts that anchor to the window height.
func Builtin(name string, viewportH float64) (*LevelData, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (have %v)", name, BuiltinNames())
	}
	return build(viewportH), nil
}

func meadowLevel(float64) *LevelData {
	return &LevelData{
		Name: Meadow,
		SolidRects: []SolidRect{
			{X: 0, Y: 360, W: 800, H: 40},
			{X: 200, Y: 300, W: 100, H: 10},
			{X: 400, Y: 250, W: 100, H: 10},
		},
		SpawnPoints: []SpawnPoint{{X: 50, Y: 300}},
		MapWidth:    800,
		MapHeight:   400,
	}
}

func outlineLevel(viewportH float64) *LevelData {
	off := viewportH - 500
	d := &LevelData{
		Name: Outline,
		SolidRects: []SolidRect{
			{X: 0, Y: 450 + off, W: 300, H: 50},
			{X: 350, Y: 400 + off, W: 150, H: 50},
			{X: 550, Y: 330 + off, W: 200, H: 50},
			{X: 800, Y: 250 + off, W: 300, H: 50},
			{X: 1050, Y: off, W: 50, H: 250},
			{X: 1200, Y: 350 + off, W: 600, H: 50},
			// catch floor below the window so a missed jump still lands somewhere
			{X: -1000, Y: viewportH, W: 5000, H: 100},
		},
		SpawnPoints: []SpawnPoint{{X: 50, Y: viewportH - 100}},
	}
	_, _, maxX, maxY := d.Bounds()
	d.MapWidth = int(math.Ceil(maxX))
	d.MapHeight = int(math.Ceil(maxY))
	return d
}
