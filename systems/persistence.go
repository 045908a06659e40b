package systems

import (
	"encoding/json"

	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowSensors    bool   `json:"showSensors"`
	PolicyOverride string `json:"policyOverride"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "mostro",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return DecodeSettings(data)
}

// DecodeSettings parses a saved payload, dropping unknown policies.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return nil, err
	}
	switch cfg.LossPolicy(settings.PolicyOverride) {
	case "", cfg.LossByTrigger, cfg.LossByDistance:
	default:
		log.Warn("ignoring saved loss policy", "policy", settings.PolicyOverride)
		settings.PolicyOverride = ""
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
		log.Warn("could not serialize settings", "err", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the Settings component and clears its dirty flag
// on success.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		ShowSensors:    s.ShowSensors,
		PolicyOverride: string(s.PolicyOverride),
	}
	if err := SaveSettings(saved); err == nil {
		s.Dirty = false
		log.Info("settings saved", "sensors", s.ShowSensors, "policy", PolicyLabel(s.PolicyOverride))
	}
}

// ApplySavedSettings copies loaded settings into the Settings component.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.ShowSensors = saved.ShowSensors
	s.PolicyOverride = cfg.LossPolicy(saved.PolicyOverride)
	s.Dirty = false
}
