package config

// StateID names the player's movement state as shown by the host.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Fall
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jump:
		return "jumping"
	case Fall:
		return "falling"
	}
	return "none"
}
