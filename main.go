package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/scroller/config"
	"github.com/automoto/scroller/fonts"
	"github.com/automoto/scroller/scenes"
	"github.com/automoto/scroller/shared/simconfig"
	"github.com/automoto/scroller/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scale  float64
	scene  Scene
}

func NewGame(scale float64) *Game {
	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		scale: scale,
		scene: scenes.NewPlatformerScene(config.C.Width, config.C.Height),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window: the logical screen is the window size divided by
// the pixel scale, and the simulation viewport tracks it.
func (g *Game) Layout(width, height int) (int, int) {
	w := int(float64(width) / g.scale)
	h := int(float64(height) / g.scale)
	if w <= 0 || h <= 0 {
		w, h = config.C.Width, config.C.Height
	}
	if w != g.bounds.Dx() || h != g.bounds.Dy() {
		g.bounds = image.Rect(0, 0, w, h)
		g.scene.Resize(w, h)
	}
	return w, h
}

func main() {
	ebiten.SetWindowTitle("Scroller")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings before flags so the
	// command line wins.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	level := flag.String("level", config.Level.Name, "Level to start on (built-in name or TMX file stem)")
	tmxDir := flag.String("tmx", config.Level.TMXDir, "Directory of .tmx levels to load alongside the built-ins")
	preset := flag.String("preset", config.Level.SimPreset, "Movement tuning: default or meadow")
	debug := flag.Bool("debug", config.Debug.Overlay, "Show the collision debug overlay")
	scale := flag.Float64("scale", 1, "Window pixels per logical pixel")
	flag.Parse()

	config.Level.Name = *level
	config.Level.TMXDir = *tmxDir
	config.Level.SimPreset = *preset
	config.Debug.Overlay = *debug
	if *scale <= 0 {
		log.Fatalf("Invalid -scale %v", *scale)
	}
	if _, err := simconfig.Preset(*preset); err != nil {
		log.Fatalf("Invalid -preset: %v", err)
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "scale" {
			ebiten.SetWindowSize(int(float64(config.C.Width)**scale), int(float64(config.C.Height)**scale))
		}
	})

	if err := ebiten.RunGame(NewGame(*scale)); err != nil {
		log.Fatal(err)
	}
}
