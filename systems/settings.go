package systems

import (
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug toggles. It runs even while paused.
func UpdateSettings(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if input.Action(components.ActionToggleSensors).JustPressed {
		ToggleSensors(settings)
	}
	if input.Action(components.ActionCyclePolicy).JustPressed {
		CyclePolicy(settings)
	}
	if input.Action(components.ActionSave).JustPressed {
		SaveCurrentSettings(settings)
	}
}

func ToggleSensors(settings *components.SettingsData) {
	settings.ShowSensors = !settings.ShowSensors
	settings.Dirty = true
}

// CyclePolicy steps the override through none, trigger and distance. The
// world scene rebuilds the level when the override changes.
func CyclePolicy(settings *components.SettingsData) {
	settings.PolicyOverride = NextPolicy(settings.PolicyOverride)
	settings.Dirty = true
	log.Info("loss policy override changed", "policy", PolicyLabel(settings.PolicyOverride))
}

func NextPolicy(p cfg.LossPolicy) cfg.LossPolicy {
	switch p {
	case "":
		return cfg.LossByTrigger
	case cfg.LossByTrigger:
		return cfg.LossByDistance
	default:
		return ""
	}
}

// PolicyLabel names an override for display.
func PolicyLabel(p cfg.LossPolicy) string {
	if p == "" {
		return "per type"
	}
	return string(p)
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		factory.CreateSettings(ecs)
	}
	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
