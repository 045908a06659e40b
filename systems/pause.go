package systems

import (
	"github.com/automoto/mostro/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause and lets single ticks through while paused.
// This system should run AFTER input.Update but BEFORE the simulation systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := GetOrCreateInput(ecs)

	pause.Step = false
	if input.Action(components.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if pause.IsPaused && input.Action(components.ActionStep).JustPressed {
		pause.Step = true
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused && !pause.Step {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
