package factory

import (
	"image/color"

	"github.com/automoto/mostro/ai"
	"github.com/automoto/mostro/archetypes"
	"github.com/automoto/mostro/components"
	cfg "github.com/automoto/mostro/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DeathEffect names an effect resource. It carries no health, so it is
// always safe to spawn.
type DeathEffect string

func (d DeathEffect) Name() string { return string(d) }

// EffectSpawner places effects requested by the AI into the world.
type EffectSpawner struct {
	ecs  *ecs.ECS
	tint color.RGBA
}

var _ ai.EffectSpawner = EffectSpawner{}

func NewEffectSpawner(ecs *ecs.ECS, tint color.RGBA) EffectSpawner {
	return EffectSpawner{ecs: ecs, tint: tint}
}

func (s EffectSpawner) SpawnEffect(effect ai.DeathEffect, pos mgl64.Vec3, _ mgl64.Quat) {
	CreateDeathEffect(s.ecs, effect.Name(), pos, s.tint)
}

// CreateDeathEffect spawns an expanding, fading ring.
func CreateDeathEffect(ecs *ecs.ECS, name string, pos mgl64.Vec3, tint color.RGBA) *donburi.Entry {
	effect := archetypes.Effect.Spawn(ecs)

	seconds := float32(cfg.Effect.Duration.Seconds())
	components.Effect.SetValue(effect, components.EffectData{
		Name:     name,
		Position: pos,
		Tint:     tint,
		Grow:     gween.New(float32(cfg.Effect.StartRadius), float32(cfg.Effect.EndRadius), seconds, ease.OutQuad),
		Fade:     gween.New(1, 0, seconds, ease.InQuad),
		Radius:   cfg.Effect.StartRadius,
		Alpha:    1,
	})

	return effect
}
