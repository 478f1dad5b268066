package core

import (
	"testing"

	"github.com/automoto/scroller/shared/intent"
	"github.com/automoto/scroller/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestNewScrollCameraRejectsBadInput(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		fraction      float64
	}{
		{"zero fraction", 960, 540, 0},
		{"fraction one", 960, 540, 1},
		{"zero width", 0, 540, 0.4},
		{"negative height", 960, -1, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScrollCamera(tt.width, tt.height, tt.fraction)
			assert.ErrorIs(t, err, ErrInvalidViewport)
		})
	}
}

// Boundary at 0.4 * 960 = 384. Walking right from x=0 the offset stays 0
// until the player passes 384, then grows one unit per unit moved.
func TestScenarioCScrollsPastBoundary(t *testing.T) {
	lvl := mustLevel(t, 0, 68, longFloor)
	sim := mustSim(t, lvl)

	var st RenderState
	for i := 0; i < 76; i++ {
		st = sim.Step(intent.Intent{MoveRight: true}, Delta{})
		require.Equal(t, 0.0, st.ScrollOffset, "frame %d", i+1)
	}
	assert.Equal(t, 380.0, st.PlayerWorld.X)

	st = sim.Step(intent.Intent{MoveRight: true}, Delta{})
	assert.Equal(t, 385.0, st.PlayerWorld.X)
	assert.Equal(t, 1.0, st.ScrollOffset)
	assert.Equal(t, 384.0, st.PlayerScreen.X)

	prev := st.ScrollOffset
	for i := 0; i < 50; i++ {
		st = sim.Step(intent.Intent{MoveRight: true}, Delta{})
		assert.Equal(t, prev+5, st.ScrollOffset)
		assert.Equal(t, 384.0, st.PlayerScreen.X)
		prev = st.ScrollOffset
	}
}

func TestScenarioDLeftEdgeClamp(t *testing.T) {
	lvl := mustLevel(t, 50, 68, longFloor)
	sim := mustSim(t, lvl)

	var st RenderState
	for i := 0; i < 20; i++ {
		st = sim.Step(intent.Intent{MoveLeft: true}, Delta{})
		require.GreaterOrEqual(t, st.PlayerWorld.X, 0.0)
	}
	assert.Equal(t, 0.0, st.PlayerWorld.X)
	assert.Equal(t, 0.0, st.PlayerScreen.X)
	assert.Equal(t, 0.0, st.ScrollOffset)
	assert.Equal(t, 0.0, st.Velocity.X, "pinned at the left edge")

	st = sim.Step(intent.Intent{MoveRight: true}, Delta{})
	assert.Equal(t, 5.0, st.Velocity.X)
}

func TestScrollUnwindsWhenWalkingBack(t *testing.T) {
	lvl := mustLevel(t, 0, 68, longFloor)
	sim := mustSim(t, lvl)

	var st RenderState
	for i := 0; i < 200; i++ {
		st = sim.Step(intent.Intent{MoveRight: true}, Delta{})
	}
	require.Greater(t, st.ScrollOffset, 0.0)
	peak := st.ScrollOffset

	// Walking back pins the player to the boundary while the view unwinds.
	for i := 0; i < 10; i++ {
		st = sim.Step(intent.Intent{MoveLeft: true}, Delta{})
	}
	assert.Equal(t, peak-50, st.ScrollOffset)
	assert.Equal(t, 384.0, st.PlayerScreen.X)

	// Once the view reaches the level start the player walks to the edge.
	for i := 0; i < 400; i++ {
		st = sim.Step(intent.Intent{MoveLeft: true}, Delta{})
		require.GreaterOrEqual(t, st.ScrollOffset, 0.0)
		require.GreaterOrEqual(t, st.PlayerScreen.X, 0.0)
	}
	assert.Equal(t, 0.0, st.ScrollOffset)
	assert.Equal(t, 0.0, st.PlayerWorld.X)
}

func TestScrollNeverDecreasesWhileMovingRight(t *testing.T) {
	data, err := leveldata.Builtin(leveldata.Outline, testViewportH)
	require.NoError(t, err)
	lvl, err := NewLevel(data)
	require.NoError(t, err)
	sim := mustSim(t, lvl)

	prev := 0.0
	for i := 0; i < 600; i++ {
		st := sim.Step(intent.Intent{MoveRight: true, Jump: i%40 == 0}, Delta{})
		require.GreaterOrEqual(t, st.ScrollOffset, prev, "frame %d", i+1)
		require.LessOrEqual(t, st.PlayerScreen.X, sim.Camera().Boundary())
		prev = st.ScrollOffset
	}
}

func TestWallStopDoesNotScroll(t *testing.T) {
	lvl := mustLevel(t, 500, 68,
		longFloor,
		leveldata.SolidRect{X: 700, Y: 0, W: 50, H: 100},
	)
	sim := mustSim(t, lvl)

	var st RenderState
	for i := 0; i < 60; i++ {
		st = sim.Step(intent.Intent{MoveRight: true}, Delta{})
	}
	require.Equal(t, 668.0, st.PlayerWorld.X)
	offset := st.ScrollOffset

	for i := 0; i < 5; i++ {
		st = sim.Step(intent.Intent{MoveRight: true}, Delta{})
	}
	assert.Equal(t, offset, st.ScrollOffset)
	assert.Equal(t, 384.0, st.PlayerScreen.X)
}

func TestCameraScreenWorldConversion(t *testing.T) {
	cam, err := NewScrollCamera(800, 600, 0.5)
	require.NoError(t, err)
	cam.Offset = 120

	screen := cam.ToScreen(math.NewVec2(300, 40))
	assert.Equal(t, math.NewVec2(180, 40), screen)
	assert.Equal(t, math.NewVec2(300, 40), cam.ToWorld(screen))
	assert.Equal(t, 400.0, cam.Boundary())

	cam.Reset()
	assert.Equal(t, 0.0, cam.Offset)
}

func TestCameraResizeValidation(t *testing.T) {
	cam, err := NewScrollCamera(800, 600, 0.4)
	require.NoError(t, err)
	cam.Offset = 50

	require.ErrorIs(t, cam.Resize(-5, 600), ErrInvalidViewport)
	w, h := cam.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)

	require.NoError(t, cam.Resize(1280, 720))
	w, h = cam.Size()
	assert.Equal(t, 1280.0, w)
	assert.Equal(t, 720.0, h)
	assert.Equal(t, 50.0, cam.Offset)
	assert.Equal(t, 512.0, cam.Boundary())
}
