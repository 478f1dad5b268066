package components

import "github.com/yohamta/donburi"

// SettingsData holds host toggles that survive restarts.
type SettingsData struct {
	Debug           bool
	Fullscreen      bool
	ResolutionIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
