package core

import (
	"testing"

	"github.com/automoto/scroller/shared/intent"
	"github.com/automoto/scroller/shared/leveldata"
	"github.com/automoto/scroller/shared/simconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

// Spawned at rest with feet 10 units above the platform top, gravity 0.6:
// bottom after n frames is 32 + 0.3n(n+1), which first reaches 42 at n=6.
func TestScenarioALandsOnCrossingFrame(t *testing.T) {
	lvl := mustLevel(t, 0, 0, leveldata.SolidRect{X: -100, Y: 42, W: 400, H: 20})
	sim := mustSim(t, lvl)

	for frame := 1; frame <= 5; frame++ {
		st := sim.Step(intent.Intent{}, Delta{})
		require.False(t, st.Grounded, "frame %d", frame)
		require.Less(t, st.PlayerWorld.Y+32, 42.0)
	}

	st := sim.Step(intent.Intent{}, Delta{})
	assert.True(t, st.Grounded)
	assert.Equal(t, 0.0, st.Velocity.Y)
	assert.Equal(t, 42.0, st.PlayerWorld.Y+st.PlayerSize.Y)
	assert.Equal(t, []Contact{{Platform: 0, Side: SideTop}}, st.Contacts)
}

func TestLandingProperty(t *testing.T) {
	tops := []float64{37, 42.5, 100, 333.3}
	for _, top := range tops {
		lvl := mustLevel(t, 0, 0, leveldata.SolidRect{X: -50, Y: top, W: 200, H: 10})
		sim := mustSim(t, lvl)

		var st RenderState
		for i := 0; i < 200 && !st.Grounded; i++ {
			st = sim.Step(intent.Intent{}, Delta{})
		}
		require.True(t, st.Grounded, "top %v", top)
		assert.Equal(t, 0.0, st.Velocity.Y)
		assert.InDelta(t, top, st.PlayerWorld.Y+st.PlayerSize.Y, 1e-9)
	}
}

func TestResolveIsIdempotentWhenResting(t *testing.T) {
	lvl := mustLevel(t, 50, 68, longFloor)
	sim := mustSim(t, lvl)
	sim.Step(intent.Intent{}, Delta{})

	p := sim.player
	require.True(t, p.Grounded)
	rest := p.Position

	Resolve(p, lvl, nil)
	Resolve(p, lvl, nil)
	assert.Equal(t, rest, p.Position)
	assert.True(t, p.Grounded)

	for i := 0; i < 10; i++ {
		st := sim.Step(intent.Intent{}, Delta{})
		assert.Equal(t, rest, st.PlayerWorld)
		assert.True(t, st.Grounded)
		assert.Equal(t, 0.0, st.Velocity.Y)
	}
}

func TestScenarioBJumpAndReland(t *testing.T) {
	lvl := mustLevel(t, 50, 68, longFloor)
	sim := mustSim(t, lvl)
	st := sim.Step(intent.Intent{}, Delta{})
	require.True(t, st.Grounded)
	restY := st.PlayerWorld.Y

	st = sim.Step(intent.Intent{Jump: true}, Delta{})
	assert.False(t, st.Grounded)
	assert.InDelta(t, -14+0.6, st.Velocity.Y, 1e-9, "impulse plus one frame of gravity")

	frames := 1
	peaked := false
	for !st.Grounded {
		require.Less(t, frames, 200, "never re-landed")
		st = sim.Step(intent.Intent{}, Delta{})
		frames++
		if st.Velocity.Y > 0 {
			peaked = true
		}
		if !st.Grounded {
			assert.Less(t, st.PlayerWorld.Y, restY)
		}
	}
	assert.True(t, peaked)
	assert.Greater(t, frames, 40)
	assert.Equal(t, restY, st.PlayerWorld.Y)
}

func TestJumpHeldDoesNotDoubleJump(t *testing.T) {
	lvl := mustLevel(t, 50, 68, longFloor)
	sim := mustSim(t, lvl)
	sim.Step(intent.Intent{}, Delta{})

	st := sim.Step(intent.Intent{Jump: true}, Delta{})
	vy := st.Velocity.Y
	st = sim.Step(intent.Intent{Jump: true}, Delta{})
	assert.InDelta(t, vy+0.6, st.Velocity.Y, 1e-9)
}

func TestResolveSideWall(t *testing.T) {
	lvl := mustLevel(t, 200, 68,
		longFloor,
		leveldata.SolidRect{X: 300, Y: 0, W: 50, H: 100},
	)
	sim := mustSim(t, lvl)

	var st RenderState
	for i := 0; i < 30; i++ {
		st = sim.Step(intent.Intent{MoveRight: true}, Delta{})
	}
	assert.Equal(t, 268.0, st.PlayerWorld.X)
	assert.Equal(t, 0.0, st.Velocity.X)
	assert.True(t, st.Grounded)
	assert.Equal(t, []Contact{{Platform: 0, Side: SideTop}, {Platform: 1, Side: SideLeft}}, st.Contacts)

	// walking away is not blocked
	st = sim.Step(intent.Intent{MoveLeft: true}, Delta{})
	assert.Equal(t, 263.0, st.PlayerWorld.X)
}

func TestResolveSideWallFromTheRight(t *testing.T) {
	lvl := mustLevel(t, 400, 68,
		longFloor,
		leveldata.SolidRect{X: 300, Y: 0, W: 50, H: 100},
	)
	sim := mustSim(t, lvl)

	var st RenderState
	for i := 0; i < 30; i++ {
		st = sim.Step(intent.Intent{MoveLeft: true}, Delta{})
	}
	assert.Equal(t, 350.0, st.PlayerWorld.X)
	assert.Contains(t, st.Contacts, Contact{Platform: 1, Side: SideRight})
}

func TestResolveCeiling(t *testing.T) {
	lvl := mustLevel(t, 50, 68,
		longFloor,
		leveldata.SolidRect{X: 0, Y: 0, W: 1000, H: 20},
	)
	sim := mustSim(t, lvl)
	sim.Step(intent.Intent{}, Delta{})

	var st RenderState
	hit := false
	for i := 0; i < 10 && !hit; i++ {
		st = sim.Step(intent.Intent{Jump: i == 0}, Delta{})
		hit = len(st.Contacts) > 0
	}
	require.True(t, hit)
	assert.Equal(t, []Contact{{Platform: 1, Side: SideBottom}}, st.Contacts)
	assert.Equal(t, 20.0, st.PlayerWorld.Y)
	assert.Equal(t, 0.0, st.Velocity.Y)
	assert.False(t, st.Grounded)
}

func TestRisingThroughTopIsNotALanding(t *testing.T) {
	lvl := mustLevel(t, 0, 0, leveldata.SolidRect{X: 0, Y: 50, W: 100, H: 10})
	p := NewPlayer(math.NewVec2(0, 70), sim0Player())
	p.prev = p.Position
	p.Position.Y = 40 // bottom swept from 102 up to 72, through nothing but the underside
	p.Velocity.Y = -30

	contacts := Resolve(p, lvl, nil)
	assert.Equal(t, []Contact{{Platform: 0, Side: SideBottom}}, contacts)
	assert.Equal(t, 60.0, p.Position.Y)
	assert.False(t, p.Grounded)
}

func TestFirstPlatformInOrderWins(t *testing.T) {
	lower := leveldata.SolidRect{X: 0, Y: 50, W: 100, H: 10}
	upper := leveldata.SolidRect{X: 0, Y: 45, W: 100, H: 10}

	fall := func(lvl *Level) (*Player, []Contact) {
		p := NewPlayer(math.NewVec2(0, 8), sim0Player()) // bottom at 40
		p.Position.Y = 28                                 // bottom at 60: crosses both tops
		p.Velocity.Y = 20
		return p, Resolve(p, lvl, nil)
	}

	p, contacts := fall(mustLevel(t, 0, 0, lower, upper))
	assert.Equal(t, []Contact{{Platform: 0, Side: SideTop}}, contacts)
	assert.Equal(t, 18.0, p.Position.Y)

	p, contacts = fall(mustLevel(t, 0, 0, upper, lower))
	assert.Equal(t, []Contact{{Platform: 0, Side: SideTop}}, contacts)
	assert.Equal(t, 13.0, p.Position.Y)
}

// A step block sits on the right end of the floor with aligned right edges.
// Falling left past both, the landing on the floor is decided first, then the
// wall clamp on the step moves the player beyond the floor's right edge.
func TestWallClampOffLandedPlatformClearsGrounded(t *testing.T) {
	floor := leveldata.SolidRect{X: 0, Y: 100, W: 200, H: 50}
	step := leveldata.SolidRect{X: 160, Y: 40, W: 40, H: 60}
	lvl := mustLevel(t, 200, 60, floor, step)

	p := NewPlayer(math.NewVec2(200, 60), sim0Player())
	p.Position = math.NewVec2(195, 70)
	p.Velocity = math.NewVec2(-5, 10)

	contacts := Resolve(p, lvl, nil)
	assert.Equal(t, []Contact{{Platform: 1, Side: SideRight}}, contacts)
	assert.Equal(t, 200.0, p.Position.X)
	assert.Equal(t, 70.0, p.Position.Y)
	assert.Equal(t, 10.0, p.Velocity.Y)
	assert.False(t, p.Grounded)
	assert.False(t, p.Bounds().OverlapsX(lvl.Platform(0).Rect()))

	Integrate(p, intent.Intent{Jump: true}, simconfig.Default().Physics)
	assert.Greater(t, p.Velocity.Y, 0.0, "no jump from mid-air")
}

func TestWallClampKeepsLandingWhileStillOverPlatform(t *testing.T) {
	floor := leveldata.SolidRect{X: 0, Y: 100, W: 400, H: 50}
	step := leveldata.SolidRect{X: 160, Y: 40, W: 40, H: 60}
	lvl := mustLevel(t, 200, 60, floor, step)

	p := NewPlayer(math.NewVec2(200, 60), sim0Player())
	p.Position = math.NewVec2(195, 70)
	p.Velocity = math.NewVec2(-5, 10)

	contacts := Resolve(p, lvl, []Contact{{Platform: 7, Side: SideLeft}})
	assert.Equal(t, []Contact{{Platform: 7, Side: SideLeft}, {Platform: 0, Side: SideTop}, {Platform: 1, Side: SideRight}}, contacts)
	assert.Equal(t, math.NewVec2(200, 68), p.Position)
	assert.True(t, p.Grounded)
}

func TestHighSpeedFallDoesNotTunnel(t *testing.T) {
	lvl := mustLevel(t, 0, 0, leveldata.SolidRect{X: -10, Y: 500, W: 100, H: 2})
	sim := mustSim(t, lvl)

	var st RenderState
	for i := 0; i < 200 && !st.Grounded; i++ {
		st = sim.Step(intent.Intent{}, Delta{})
	}
	require.True(t, st.Grounded)
	assert.Equal(t, 468.0, st.PlayerWorld.Y)
}

func TestTeleportInsidePlatformIsLeftUncorrected(t *testing.T) {
	lvl := mustLevel(t, 0, 0, leveldata.SolidRect{X: 0, Y: 100, W: 200, H: 50})
	sim := mustSim(t, lvl)
	sim.player.Teleport(math.NewVec2(50, 110))

	st := sim.Step(intent.Intent{MoveRight: true}, Delta{})
	assert.False(t, st.Grounded)
	assert.Empty(t, st.Contacts)
	assert.Greater(t, st.PlayerWorld.Y, 110.0)
}

func TestGroundedIsNotSticky(t *testing.T) {
	lvl := mustLevel(t, 0, 68, leveldata.SolidRect{X: 0, Y: 100, W: 40, H: 10})
	sim := mustSim(t, lvl)
	st := sim.Step(intent.Intent{}, Delta{})
	require.True(t, st.Grounded)

	for i := 0; i < 20; i++ {
		st = sim.Step(intent.Intent{MoveRight: true}, Delta{})
	}
	assert.False(t, st.Grounded, "walked off the ledge")
}

func TestEmptyLevelFreeFalls(t *testing.T) {
	lvl := mustLevel(t, 0, 0)
	sim := mustSim(t, lvl)

	var st RenderState
	for i := 0; i < 500; i++ {
		st = sim.Step(intent.Intent{}, Delta{})
		require.False(t, st.Grounded)
		require.LessOrEqual(t, st.Velocity.Y, 15.0)
	}
	assert.Equal(t, 15.0, st.Velocity.Y)
}

func TestNegativeWorldCoordinates(t *testing.T) {
	lvl := mustLevel(t, 50, 440, leveldata.SolidRect{X: -1000, Y: 600, W: 5000, H: 100})
	sim := mustSim(t, lvl)

	var st RenderState
	for i := 0; i < 200 && !st.Grounded; i++ {
		st = sim.Step(intent.Intent{}, Delta{})
	}
	require.True(t, st.Grounded)
	assert.Equal(t, 568.0, st.PlayerWorld.Y)
}

func TestHugeLevelStillResolves(t *testing.T) {
	lvl := mustLevel(t, 5e6, 0, leveldata.SolidRect{X: 0, Y: 100, W: 1e7, H: 1e4})
	sim := mustSim(t, lvl)

	var st RenderState
	for i := 0; i < 200 && !st.Grounded; i++ {
		st = sim.Step(intent.Intent{}, Delta{})
	}
	assert.True(t, st.Grounded)
	assert.Equal(t, 68.0, st.PlayerWorld.Y)
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "top", SideTop.String())
	assert.Equal(t, "right", SideRight.String())
	assert.Equal(t, "unknown", Side(9).String())
}
