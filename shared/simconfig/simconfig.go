// Package simconfig holds the tunables of the movement core. It must have zero
// dependencies on ebiten or any graphics library so the headless runner and
// the core tests stay free of a display.
package simconfig

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalid is wrapped by every Validate failure.
	ErrInvalid = errors.New("invalid simulation config")
	// ErrUnknownPreset is returned by Preset for a name it does not know.
	ErrUnknownPreset = errors.New("unknown simulation preset")
)

// Preset names accepted by Preset.
const (
	PresetDefault = "default"
	PresetMeadow  = "meadow"
)

// PhysicsConfig contains world-wide physics values. Units are per 60 Hz frame.
type PhysicsConfig struct {
	Gravity float64 // added to vy every frame
}

// PlayerConfig contains the fixed per-player constants.
type PlayerConfig struct {
	Width             float64
	Height            float64
	Speed             float64 // horizontal speed while a direction is held
	JumpImpulse       float64 // vy becomes -JumpImpulse on jump
	TerminalFallSpeed float64 // downward vy clamp
}

// CameraConfig contains scroll camera behavior.
type CameraConfig struct {
	BoundaryFraction float64 // scroll boundary as a fraction of viewport width
}

// SimConfig groups everything the core needs to build a Simulation.
type SimConfig struct {
	Physics PhysicsConfig
	Player  PlayerConfig
	Camera  CameraConfig
}

// Default returns the values used by the scrolling outline level.
func Default() SimConfig {
	return SimConfig{
		Physics: PhysicsConfig{
			Gravity: 0.6,
		},
		Player: PlayerConfig{
			Width:             32,
			Height:            32,
			Speed:             5,
			JumpImpulse:       14,
			TerminalFallSpeed: 15,
		},
		Camera: CameraConfig{
			BoundaryFraction: 0.4,
		},
	}
}

// Meadow returns the slower, heavier tuning of the single-screen meadow level.
func Meadow() SimConfig {
	c := Default()
	c.Physics.Gravity = 0.5
	c.Player = PlayerConfig{
		Width:             40,
		Height:            40,
		Speed:             3,
		JumpImpulse:       10,
		TerminalFallSpeed: 20,
	}
	return c
}

// Preset returns the tuning registered under name.
func Preset(name string) (SimConfig, error) {
	switch name {
	case PresetDefault:
		return Default(), nil
	case PresetMeadow:
		return Meadow(), nil
	}
	return SimConfig{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Validate reports the first value that would make the simulation misbehave.
func (c SimConfig) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"player.jump_impulse", c.Player.JumpImpulse},
		{"player.terminal_fall_speed", c.Player.TerminalFallSpeed},
	}
	for _, chk := range checks {
		if math.IsNaN(chk.v) || math.IsInf(chk.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalid, chk.name)
		}
		if chk.v < 0 {
			return fmt.Errorf("%w: %s is negative (%v)", ErrInvalid, chk.name, chk.v)
		}
	}
	if c.Player.Width == 0 || c.Player.Height == 0 {
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	}
	if c.Player.Speed == 0 {
		return fmt.Errorf("%w: player.speed must be positive", ErrInvalid)
	}
	if c.Player.JumpImpulse == 0 {
		return fmt.Errorf("%w: player.jump_impulse must be positive", ErrInvalid)
	}
	if c.Player.TerminalFallSpeed == 0 {
		return fmt.Errorf("%w: player.terminal_fall_speed must be positive", ErrInvalid)
	}
	f := c.Camera.BoundaryFraction
	if math.IsNaN(f) || f <= 0 || f >= 1 {
		return fmt.Errorf("%w: camera.boundary_fraction must be in (0, 1), got %v", ErrInvalid, f)
	}
	return nil
}
