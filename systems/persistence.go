package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/scroller/components"
	cfg "github.com/automoto/scroller/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug           bool   `json:"debug"`
	Fullscreen      bool   `json:"fullscreen"`
	ResolutionIndex int    `json:"resolutionIndex"`
	LastLevel       string `json:"lastLevel"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when persistence
// is unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.SettingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.SettingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the settings component and the active level
func SaveCurrentSettings(e *ecs.ECS) {
	_ = SaveSettings(currentSettings(e))
}

func currentSettings(e *ecs.ECS) *SavedSettings {
	s := GetOrCreateSettings(e)
	saved := &SavedSettings{
		Debug:           s.Debug,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	}
	if levelEntry, ok := components.Level.First(e.World); ok {
		saved.LastLevel = components.Level.Get(levelEntry).CurrentName()
	}
	return saved
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created; CLI flags parsed afterwards
// still win.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Debug.Overlay = saved.Debug
	if saved.LastLevel != "" {
		cfg.Level.Name = saved.LastLevel
	}

	// Apply fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
