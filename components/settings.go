package components

import (
	"github.com/automoto/mostro/config"
	"github.com/yohamta/donburi"
)

// SettingsData holds the demo toggles persisted between runs.
type SettingsData struct {
	ShowSensors bool
	// PolicyOverride replaces the loss policy of newly spawned mostros when set.
	PolicyOverride config.LossPolicy
	Dirty          bool
}

var Settings = donburi.NewComponentType[SettingsData]()
