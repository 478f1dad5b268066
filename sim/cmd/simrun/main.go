package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/scroller/shared/intent"
	"github.com/automoto/scroller/shared/leveldata"
	"github.com/automoto/scroller/shared/simconfig"
	"github.com/automoto/scroller/sim/core"
)

func main() {
	levelName := flag.String("level", leveldata.Outline, "Built-in level name, or the stem of a file in -tmx")
	tmxDir := flag.String("tmx", "", "Directory of .tmx levels")
	preset := flag.String("preset", simconfig.PresetDefault, "Movement tuning: default or meadow")
	tickRate := flag.Int("tickrate", 60, "Loop tick rate (updates per second)")
	width := flag.Float64("width", 960, "Viewport width")
	height := flag.Float64("height", 540, "Viewport height")
	input := flag.String("script", "right*120,right+jump*1,right*90,idle*30", "Input script: action[+action]*ticks, comma separated")
	every := flag.Int("every", 10, "Log every N ticks (0 logs only contacts)")
	flag.Parse()

	scr, err := parseScript(*input)
	if err != nil {
		log.Fatalf("Failed to parse script: %v", err)
	}

	data, err := loadLevel(*levelName, *tmxDir, *height)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	lvl, err := core.NewLevel(data)
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}

	cfg, err := simconfig.Preset(*preset)
	if err != nil {
		log.Fatalf("Invalid -preset: %v", err)
	}
	sim, err := core.NewSimulation(cfg, lvl, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}
	log.Printf("Loaded level %q: %d platforms, spawn (%.0f, %.0f)",
		lvl.Name, lvl.NumPlatforms(), lvl.Spawn().X, lvl.Spawn().Y)

	state := &intent.State{}
	total := scr.ticks()
	tick := 0
	var loop *core.GameLoop
	loop = core.NewGameLoop(sim, state, *tickRate, func(st core.RenderState) {
		if *every > 0 && tick%*every == 0 {
			logState(st)
		} else if *every == 0 && len(st.Contacts) > 0 {
			logState(st)
		}
		tick++
		if tick >= total {
			loop.Stop()
			return
		}
		scr.apply(state, tick)
	})
	scr.apply(state, 0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Running %d ticks at %d/s", total, *tickRate)
	if err := loop.Run(ctx); err != nil {
		log.Printf("Interrupted: %v", err)
	}

	final := sim.State()
	logState(final)
	log.Printf("Done: %d frames, %d landings, %d wall hits in the last %d",
		final.Frame, sim.History().CountContacts(core.SideTop),
		sim.History().CountContacts(core.SideLeft)+sim.History().CountContacts(core.SideRight),
		len(sim.History().Since(0)))
}

func loadLevel(name, tmxDir string, viewportH float64) (*leveldata.LevelData, error) {
	if tmxDir != "" {
		levels, _, err := leveldata.LoadAllLevels(os.DirFS(tmxDir), ".")
		if err != nil {
			return nil, err
		}
		if data, ok := levels[name]; ok {
			return data, nil
		}
	}
	return leveldata.Builtin(name, viewportH)
}

func logState(st core.RenderState) {
	log.Printf("frame %4d  world (%7.1f, %6.1f)  screen x %6.1f  scroll %7.1f  grounded %-5v contacts %v",
		st.Frame, st.PlayerWorld.X, st.PlayerWorld.Y, st.PlayerScreen.X, st.ScrollOffset, st.Grounded, st.Contacts)
}
