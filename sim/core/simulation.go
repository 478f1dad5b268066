package core

import (
	"fmt"

	"github.com/automoto/scroller/shared/intent"
	"github.com/automoto/scroller/shared/simconfig"
	"github.com/yohamta/donburi/features/math"
)

// Delta describes how much simulated time a host frame covers.
type Delta struct {
	// Steps is the number of fixed 60 Hz sub-steps to run. A host ticking at
	// 20 Hz passes 3 so the per-frame tuning still holds. Values below 1 mean 1.
	Steps int
}

// RenderState is the snapshot a renderer needs after a step.
type RenderState struct {
	Frame        uint64
	PlayerScreen math.Vec2
	PlayerWorld  math.Vec2
	PlayerSize   math.Vec2
	Velocity     math.Vec2
	ScrollOffset float64
	Grounded     bool
	Contacts     []Contact // corrections made during this step, in order
}

// Simulation owns the player, level and camera. It is single-writer: Step,
// Resize and Reset must be called from the same goroutine.
type Simulation struct {
	cfg     simconfig.SimConfig
	level   *Level
	player  *Player
	camera  *ScrollCamera
	history History

	frame    uint64
	contacts []Contact
	screen   math.Vec2
}

// NewSimulation validates the configuration and spawns the player.
func NewSimulation(cfg simconfig.SimConfig, level *Level, viewportW, viewportH float64) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if level == nil {
		return nil, fmt.Errorf("%w: nil level", ErrInvalidLevel)
	}
	cam, err := NewScrollCamera(viewportW, viewportH, cfg.Camera.BoundaryFraction)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:    cfg,
		level:  level,
		camera: cam,
	}
	s.Reset()
	return s, nil
}

// Step advances the simulation by one host frame and returns what to draw.
func (s *Simulation) Step(in intent.Intent, dc Delta) RenderState {
	steps := dc.Steps
	if steps < 1 {
		steps = 1
	}

	s.contacts = s.contacts[:0]
	for i := 0; i < steps; i++ {
		Integrate(s.player, in, s.cfg.Physics)
		s.contacts = Resolve(s.player, s.level, s.contacts)
		s.screen = s.camera.Follow(s.player)
	}
	s.frame++

	state := s.State()
	s.history.Store(in, state)
	return state
}

// State returns the current render state without advancing.
func (s *Simulation) State() RenderState {
	st := RenderState{
		Frame:        s.frame,
		PlayerScreen: s.screen,
		PlayerWorld:  s.player.Position,
		PlayerSize:   math.NewVec2(s.player.Width, s.player.Height),
		Velocity:     s.player.Velocity,
		ScrollOffset: s.camera.Offset,
		Grounded:     s.player.Grounded,
	}
	if len(s.contacts) > 0 {
		st.Contacts = append([]Contact(nil), s.contacts...)
	}
	return st
}

// Resize applies a new viewport size. The scroll offset and player are kept;
// the new boundary takes effect the next time the player moves.
func (s *Simulation) Resize(width, height float64) error {
	if err := s.camera.Resize(width, height); err != nil {
		return err
	}
	s.screen = s.camera.ToScreen(s.player.Position)
	return nil
}

// Reset respawns the player at the level spawn and scrolls back to the start.
func (s *Simulation) Reset() {
	s.player = NewPlayer(s.level.Spawn(), s.cfg.Player)
	s.camera.Reset()
	s.contacts = s.contacts[:0]
	s.screen = s.camera.ToScreen(s.player.Position)
}

// Player returns a copy of the player state.
func (s *Simulation) Player() Player {
	return *s.player
}

// Level returns the level being simulated.
func (s *Simulation) Level() *Level {
	return s.level
}

// Camera returns the scroll camera.
func (s *Simulation) Camera() *ScrollCamera {
	return s.camera
}

// History returns the recent frame records.
func (s *Simulation) History() *History {
	return &s.history
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() simconfig.SimConfig {
	return s.cfg
}
