package systems

import (
	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the global config on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Overlay,
			Fullscreen: ebiten.IsFullscreen(),
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug and fullscreen toggles and persists them.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	changed := false

	if GetHostAction(input, cfg.HostToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetHostAction(input, cfg.HostToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if changed {
		SaveCurrentSettings(e)
	}
}
