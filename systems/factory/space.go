package factory

import (
	"github.com/automoto/mostro/archetypes"
	"github.com/automoto/mostro/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Broad-phase cell size in map pixels.
const spaceCellSize = 16

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers objects with the world's space, if one exists.
func addToSpace(ecs *ecs.ECS, objects ...*resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(objects...)
	}
}
