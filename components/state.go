package components

import (
	"github.com/automoto/scroller/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // frames spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type RunningState struct{}
type JumpingState struct{}
type FallingState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Running = donburi.NewComponentType[RunningState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Falling = donburi.NewComponentType[FallingState]()
