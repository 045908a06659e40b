package archetypes

import (
	"github.com/automoto/mostro/components"
	"github.com/automoto/mostro/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Transform,
		components.Health,
	)
	Mostro = newArchetype(
		tags.Mostro,
		components.Mostro,
		components.Object,
		components.Transform,
		components.Animation,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
