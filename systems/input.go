package systems

import (
	"github.com/automoto/mostro/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// analogDeadzone filters stick drift (0.0 to 1.0)
const analogDeadzone = 0.25

// moveDirection turns the movement actions, or the left stick when it is
// pushed past the deadzone, into a ground-plane direction. Screen up is -Z.
func moveDirection(input *components.InputData) mgl64.Vec3 {
	var dir mgl64.Vec3
	if input.Current[components.ActionMoveLeft] {
		dir[0]--
	}
	if input.Current[components.ActionMoveRight] {
		dir[0]++
	}
	if input.Current[components.ActionMoveUp] {
		dir[2]--
	}
	if input.Current[components.ActionMoveDown] {
		dir[2]++
	}
	if dir.Len() > 0 {
		return dir
	}

	x, y := input.Stick[0], input.Stick[1]
	if x*x+y*y >= analogDeadzone*analogDeadzone {
		return mgl64.Vec3{x, 0, y}
	}
	return dir
}

// GetOrCreateInput returns the singleton Input component, creating if needed.
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Input))
	}
	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}
