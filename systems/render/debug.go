package render

import (
	"image/color"

	"github.com/automoto/mostro/ai"
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/systems"
	"github.com/automoto/mostro/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	sensorIdle  = color.RGBA{R: 100, G: 180, B: 255, A: 160}
	sensorAlert = color.RGBA{R: 255, G: 200, B: 0, A: 200}
	chaseRing   = color.RGBA{R: 255, G: 90, B: 90, A: 140}
	routeColor  = color.RGBA{R: 255, G: 255, B: 255, A: 90}
)

// DrawSensors renders the detection circles, patrol routes, stand-off points
// and collider outlines when sensors are toggled on.
func DrawSensors(ecs *ecs.ECS, screen *ebiten.Image) {
	if !systems.GetOrCreateSettings(ecs).ShowSensors {
		return
	}

	components.Mostro.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Mostro.Get(e)
		if m.Actor == nil || m.Actor.Health.Dead() {
			return
		}
		x, y := toScreen(components.Transform.Get(e).Position)

		ring := sensorIdle
		if m.Actor.Detector.InAlert() {
			ring = sensorAlert
		}
		vector.StrokeCircle(screen, x, y, metresToPixels(m.Radius), 1, ring, true)

		if m.Actor.Combat.Policy() == cfg.LossByDistance {
			chase := m.Actor.Type.Combat.ChaseDistance
			vector.StrokeCircle(screen, x, y, metresToPixels(chase), 1, chaseRing, true)
		}

		drawRoute(screen, m.Actor)

		if m.Actor.Combat.State().Engaged() {
			sx, sy := toScreen(m.Actor.Combat.StandoffPoint())
			vector.StrokeLine(screen, x, y, sx, sy, 1, cfg.Orange, true)
			vector.DrawFilledRect(screen, sx-2, sy-2, 4, 4, cfg.Orange, false)
		}
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			if obj.HasTags(tags.ResolvSensor) {
				continue
			}
			c := cfg.LightGreen
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Blue
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}
}

func drawRoute(screen *ebiten.Image, actor *ai.Actor) {
	waypoints := actor.Patrol.Waypoints()
	for i, wp := range waypoints {
		x, y := toScreen(wp)
		vector.DrawFilledCircle(screen, x, y, 3, routeColor, true)
		if i > 0 {
			px, py := toScreen(waypoints[i-1])
			vector.StrokeLine(screen, px, py, x, y, 1, routeColor, true)
		}
	}
	if target, ok := actor.Patrol.Target(); ok {
		x, y := toScreen(target)
		vector.StrokeCircle(screen, x, y, 5, 1, cfg.White, true)
	}
}
