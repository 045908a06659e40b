package factory

import (
	"github.com/automoto/mostro/archetypes"
	"github.com/automoto/mostro/components"
	"github.com/automoto/mostro/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle adds a solid rectangle in map pixels. Obstacles block the
// player; mostros move point to point and ignore them.
func CreateObstacle(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = obstacle // Link for O(1) lookup

	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return obstacle
}
