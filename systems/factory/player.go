package factory

import (
	"github.com/automoto/mostro/archetypes"
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/automoto/mostro/shared/leveldata"
	"github.com/automoto/mostro/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at pos (world metres).
func CreatePlayer(ecs *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Radius * 2 * cfg.C.PixelsPerMetre
	px := leveldata.FromWorld(pos, cfg.C.PixelsPerMetre)
	obj := resolv.NewObject(px.X-size/2, px.Y-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags("character", tags.ResolvPlayer)
	if cfg.Player.Tag != tags.ResolvPlayer {
		obj.AddTags(cfg.Player.Tag)
	}
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Rotation: mgl64.QuatIdent(),
	})
	components.Player.SetValue(player, components.PlayerData{
		Speed: cfg.Player.Speed,
		Spawn: pos,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}
