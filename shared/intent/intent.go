// Package intent carries player input from the host to the movement core.
// Raw keys are mapped to actions by the host; the core only ever sees Intent.
package intent

// Action identifies a logical movement action.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionJump:      "jump",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Intent is the per-frame movement request.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// FromActions builds an Intent from a pressed-state array.
func FromActions(pressed [ActionCount]bool) Intent {
	return Intent{
		MoveLeft:  pressed[ActionMoveLeft],
		MoveRight: pressed[ActionMoveRight],
		Jump:      pressed[ActionJump],
	}
}

// Direction returns -1, 0 or 1. Left wins when both directions are held.
func (in Intent) Direction() int {
	switch {
	case in.MoveLeft:
		return -1
	case in.MoveRight:
		return 1
	}
	return 0
}
