package core

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/automoto/scroller/shared/intent"
)

// baseRate is the frame rate the per-frame tuning assumes.
const baseRate = 60

// GameLoop drives a Simulation from a ticker for hosts without their own frame
// callback. Input is read from an intent.State once per tick.
type GameLoop struct {
	sim      *Simulation
	input    *intent.State
	tickRate int
	onFrame  func(RenderState)

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop creates a loop. onFrame may be nil.
func NewGameLoop(sim *Simulation, input *intent.State, tickRate int, onFrame func(RenderState)) *GameLoop {
	if tickRate < 1 {
		tickRate = baseRate
	}
	return &GameLoop{
		sim:      sim,
		input:    input,
		tickRate: tickRate,
		onFrame:  onFrame,
		stopChan: make(chan struct{}),
	}
}

// StepsPerTick returns how many 60 Hz sub-steps each tick runs.
func (g *GameLoop) StepsPerTick() int {
	steps := baseRate / g.tickRate
	if steps < 1 {
		steps = 1
	}
	return steps
}

// Run ticks until Stop is called or ctx is done. Stopping never interrupts a
// step in progress; the next tick is simply not scheduled.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second (%d steps/tick)", g.tickRate, g.StepsPerTick())

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return ctx.Err()
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return nil
		case <-ticker.C:
			g.Tick()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Tick runs one host frame immediately.
func (g *GameLoop) Tick() RenderState {
	state := g.sim.Step(g.input.Snapshot(), Delta{Steps: g.StepsPerTick()})
	if g.onFrame != nil {
		g.onFrame(state)
	}
	return state
}
