package systems

import (
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects copies every Transform into its collider so the space
// follows the simulation. The AI moves bodies by writing transforms directly.
func UpdateObjects(ecs *ecs.ECS) {
	ppm := cfg.C.PixelsPerMetre
	for e := range components.Transform.Iter(ecs.World) {
		if !e.HasComponent(components.Object) {
			continue
		}
		obj := components.Object.Get(e)
		p := leveldata.FromWorld(components.Transform.Get(e).Position, ppm)
		obj.PlaceCenter(p.X, p.Y)
		obj.Update()
	}
}
