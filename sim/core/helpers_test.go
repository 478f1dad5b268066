package core

import (
	"testing"

	"github.com/automoto/scroller/shared/leveldata"
	"github.com/automoto/scroller/shared/simconfig"
	"github.com/stretchr/testify/require"
)

const (
	testViewportW = 960
	testViewportH = 540
)

func mustLevel(t *testing.T, spawnX, spawnY float64, rects ...leveldata.SolidRect) *Level {
	t.Helper()
	lvl, err := NewLevel(&leveldata.LevelData{
		Name:        t.Name(),
		SolidRects:  rects,
		SpawnPoints: []leveldata.SpawnPoint{{X: spawnX, Y: spawnY}},
	})
	require.NoError(t, err)
	return lvl
}

func mustSim(t *testing.T, lvl *Level) *Simulation {
	t.Helper()
	sim, err := NewSimulation(simconfig.Default(), lvl, testViewportW, testViewportH)
	require.NoError(t, err)
	return sim
}

// longFloor is a floor whose top sits at y=100, wide enough to never run out.
var longFloor = leveldata.SolidRect{X: -100, Y: 100, W: 100000, H: 50}

func sim0Player() simconfig.PlayerConfig {
	return simconfig.Default().Player
}
