package systems

import (
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelClock advances the simulated clock of the level.
func UpdateLevelClock(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	level.Elapsed += cfg.TickDuration()
	level.Ticks++
}
