package components

import (
	cfg "github.com/automoto/scroller/config"
	"github.com/automoto/scroller/shared/intent"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
// Movement actions are forwarded to the simulation; host actions stay here.
type InputData struct {
	Current         [intent.ActionCount]bool
	Previous        [intent.ActionCount]bool
	HostCurrent     [cfg.HostCount]bool
	HostPrevious    [cfg.HostCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
