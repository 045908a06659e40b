package systems

import (
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances effect tweens and removes finished effects.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(cfg.TickDuration().Seconds())

	var toRemove []*donburi.Entry
	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		if fx.Grow != nil {
			radius, _ := fx.Grow.Update(dt)
			fx.Radius = float64(radius)
		}
		if fx.Fade != nil {
			alpha, done := fx.Fade.Update(dt)
			fx.Alpha = float64(alpha)
			fx.Done = done
		} else {
			fx.Done = true
		}
		if fx.Done {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}
