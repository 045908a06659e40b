package systems

import (
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down the removal grace and then removes the entity
// from the space and the world.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := cfg.TickDuration()

	var toRemove []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Remaining -= dt
		if death.Remaining <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		removeEntity(ecs, e)
	}
}

func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		if e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil {
				space.Remove(obj.Object)
			}
		}
		if e.HasComponent(components.Mostro) {
			if sensor := components.Mostro.Get(e).Sensor; sensor != nil {
				space.Remove(sensor)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
