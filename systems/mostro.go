package systems

import (
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMostros ticks every living actor. Actors may queue damage or spawn
// effects while ticking, so they are collected before any of them runs.
// Actors that finished their death sequence are handed to UpdateDeaths.
func UpdateMostros(ecs *ecs.ECS) {
	dt := cfg.TickDuration()

	var mostros []*donburi.Entry
	components.Mostro.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			mostros = append(mostros, e)
		}
	})

	var finished []*donburi.Entry
	for _, e := range mostros {
		if !e.Valid() {
			continue
		}
		components.Animation.Get(e).Tick(dt)

		actor := components.Mostro.Get(e).Actor
		if actor == nil {
			continue
		}
		actor.Tick(dt)
		if actor.Health.Removed() {
			finished = append(finished, e)
		}
	}

	for _, e := range finished {
		actor := components.Mostro.Get(e).Actor
		donburi.Add(e, components.Death, &components.DeathData{
			Remaining: actor.Type.Health.RemoveDelay,
		})
	}
}

// LivingMostros counts mostros that have not started dying.
func LivingMostros(ecs *ecs.ECS) int {
	n := 0
	components.Mostro.Each(ecs.World, func(e *donburi.Entry) {
		if actor := components.Mostro.Get(e).Actor; actor != nil && !actor.Health.Dead() {
			n++
		}
	})
	return n
}
