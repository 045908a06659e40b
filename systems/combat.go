package systems

import (
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/gamemath"
	"github.com/automoto/mostro/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves queued damage events. Mostros route damage through
// their actor; the player has its own health, invulnerability window and a
// respawn when it goes down.
func UpdateCombat(ecs *ecs.ECS) {
	dt := cfg.TickDuration()

	var hit []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		hit = append(hit, e)
	}

	for _, e := range hit {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		switch {
		case e.HasComponent(components.Player):
			damagePlayer(e, dmg)
		case e.HasComponent(components.Mostro):
			if actor := components.Mostro.Get(e).Actor; actor != nil {
				actor.TakeDamage(dmg.Amount)
			}
		}
	}

	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		if hp.Invuln > dt {
			hp.Invuln -= dt
		} else {
			hp.Invuln = 0
		}
	}
}

func damagePlayer(e *donburi.Entry, dmg components.DamageEventData) {
	hp := components.Health.Get(e)
	if hp.Invuln > 0 {
		return
	}
	player := components.Player.Get(e)
	player.HitsTaken++
	hp.Current -= dmg.Amount
	hp.Invuln = cfg.Player.Invulnerability

	if hp.Current > 0 {
		return
	}
	player.Downs++
	log.Info("player down, respawning", "by", dmg.Source, "downs", player.Downs)
	hp.Current = hp.Max
	components.Transform.Get(e).Position = player.Spawn
}

// UpdatePlayerAttack lets the player swat the closest mostro.
func UpdatePlayerAttack(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	if components.Input.Get(inputEntry).Action(components.ActionHit).JustPressed {
		HitNearestMostro(ecs, cfg.Player.HitDamage, cfg.Player.HitReach)
	}
}

// HitNearestMostro queues damage on the living mostro closest to the player
// within reach metres.
func HitNearestMostro(ecs *ecs.ECS, amount int, reach float64) bool {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return false
	}
	origin := components.Transform.Get(playerEntry).Position

	var nearest *donburi.Entry
	best := reach
	components.Mostro.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Mostro.Get(e).Actor
		if actor == nil || actor.Health.Dead() {
			return
		}
		if d := gamemath.PlanarDistance(origin, components.Transform.Get(e).Position); d <= best {
			best = d
			nearest = e
		}
	})
	if nearest == nil {
		return false
	}
	components.QueueDamage(nearest, amount, "player")
	return true
}
