package core

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/automoto/scroller/shared/intent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsPerTick(t *testing.T) {
	sim := mustSim(t, mustLevel(t, 0, 0))
	var in intent.State

	tests := []struct {
		rate int
		want int
	}{
		{60, 1},
		{30, 2},
		{20, 3},
		{120, 1},
		{0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewGameLoop(sim, &in, tt.rate, nil).StepsPerTick(), "rate %d", tt.rate)
	}
}

func TestTickReadsInput(t *testing.T) {
	sim := mustSim(t, mustLevel(t, 0, 68, longFloor))
	var in intent.State
	var frames []uint64
	loop := NewGameLoop(sim, &in, 20, func(st RenderState) { frames = append(frames, st.Frame) })

	in.Press(intent.ActionMoveRight)
	st := loop.Tick()
	assert.Equal(t, 15.0, st.PlayerWorld.X, "three sub-steps at speed 5")

	in.Release(intent.ActionMoveRight)
	st = loop.Tick()
	assert.Equal(t, 15.0, st.PlayerWorld.X)
	assert.Equal(t, []uint64{1, 2}, frames)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	sim := mustSim(t, mustLevel(t, 0, 0))
	var in intent.State
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks atomic.Int32
	loop := NewGameLoop(sim, &in, 120, func(RenderState) {
		if ticks.Add(1) == 3 {
			cancel()
		}
	})

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.GreaterOrEqual(t, ticks.Load(), int32(3))
}

func TestStopIsIdempotent(t *testing.T) {
	sim := mustSim(t, mustLevel(t, 0, 0))
	var in intent.State
	loop := NewGameLoop(sim, &in, 60, nil)

	loop.Stop()
	loop.Stop()
	require.NoError(t, loop.Run(context.Background()))
}
