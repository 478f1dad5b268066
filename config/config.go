package config

import (
	"image/color"

	"github.com/automoto/scroller/shared/simconfig"
	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every system draws on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// LevelConfig selects the level loaded at startup
type LevelConfig struct {
	Name      string // built-in level name, or a TMX level name when TMXDir is set
	TMXDir    string // directory of .tmx files; empty uses the built-in levels only
	SimPreset string // "default" or "meadow"
}

// RenderConfig contains colors for the flat-shaded renderer
type RenderConfig struct {
	BackgroundColor color.RGBA
	PlatformColor   color.RGBA
	PlayerColor     color.RGBA
	AirborneColor   color.RGBA
	BoundaryColor   color.RGBA
}

// HUDConfig contains HUD text layout
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	FontSize   float64
	TextColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay      bool // Draw the broad-phase space and contact markers
	ContactColor color.RGBA
	SpaceColor   color.RGBA
	ProbeColor   color.RGBA
}

// Global configuration instances
var C *Config
var Level LevelConfig
var Render RenderConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	SkyBlue      = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	GrassGreen   = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Level = LevelConfig{
		Name:      "outline",
		SimPreset: simconfig.PresetDefault,
	}

	Render = RenderConfig{
		BackgroundColor: SkyBlue,
		PlatformColor:   GrassGreen,
		PlayerColor:     Red,
		AirborneColor:   color.RGBA{R: 255, G: 120, B: 120, A: 255},
		BoundaryColor:   color.RGBA{R: 255, G: 255, B: 255, A: 60},
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 18,
		FontSize:   14,
		TextColor:  White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:      false,
		ContactColor: Yellow,
		SpaceColor:   Cyan,
		ProbeColor:   color.RGBA{R: 255, G: 0, B: 255, A: 255},
	}
}

// SimConfig returns the simulation tunables for the selected preset, falling
// back to the default tuning for an unknown name.
func SimConfig() simconfig.SimConfig {
	c, err := simconfig.Preset(Level.SimPreset)
	if err != nil {
		return simconfig.Default()
	}
	return c
}
