package systems

import (
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/gamemath"
	"github.com/automoto/mostro/shared/leveldata"
	"github.com/automoto/mostro/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSensors turns resolv overlaps into trigger-volume enter and exit
// events. The sensor box is only the broad phase; a collider counts as inside
// when its centre is within the detection radius on the ground plane.
func UpdateSensors(ecs *ecs.ECS) {
	ppm := cfg.C.PixelsPerMetre

	components.Mostro.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		m := components.Mostro.Get(e)
		if m.Actor == nil || m.Sensor == nil {
			return
		}

		cx, cy := components.Object.Get(e).CenterPixels()
		reach := m.Radius * ppm
		m.Sensor.X = cx - reach
		m.Sensor.Y = cy - reach
		m.Sensor.Update()

		origin := components.Transform.Get(e).Position
		var inside *resolv.Object
		if check := m.Sensor.Check(0, 0, tags.ResolvPlayer); check != nil {
			for _, other := range check.ObjectsByTags(tags.ResolvPlayer) {
				if withinSensor(origin, other, m.Radius, ppm) {
					inside = other
					break
				}
			}
		}

		switch {
		case inside != nil && m.Overlap == nil:
			m.Overlap = inside
			m.Actor.OnVolumeEnter(inside)
		case inside == nil && m.Overlap != nil:
			prev := m.Overlap
			m.Overlap = nil
			m.Actor.OnVolumeExit(prev)
		}
	})
}

func withinSensor(origin mgl64.Vec3, other *resolv.Object, radius, ppm float64) bool {
	centre := leveldata.Point{X: other.X + other.W/2, Y: other.Y + other.H/2}.World(ppm)
	return gamemath.PlanarDistance(origin, centre) <= radius
}
